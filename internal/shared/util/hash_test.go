package util

import (
	"strings"
	"testing"
)

func TestSessionKey(t *testing.T) {
	id := "6f1c1d2e-8d4b-4a8e-9f4c-2b1f0c9e7a11"
	got := SessionKey(id)
	if got != SessionKey(id) {
		t.Fatalf("expected stable key, got %s", got)
	}
	if len(got) != sessionKeyLen {
		t.Fatalf("expected %d hex characters, got %d", sessionKeyLen, len(got))
	}
	if strings.Trim(got, "0123456789abcdef") != "" {
		t.Fatalf("key contains non-hex characters: %s", got)
	}
	if strings.Contains(got, id[:8]) {
		t.Fatalf("key leaks the session id: %s", got)
	}
	if SessionKey("") != "" {
		t.Fatal("expected empty key for empty id")
	}
}
