package util

import (
	"crypto/sha256"
	"encoding/hex"
)

const sessionKeyLen = 16

// SessionKey returns a short, stable digest of a session id that is safe to
// log. Empty ids map to "".
func SessionKey(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:sessionKeyLen]
}
