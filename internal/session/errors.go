package session

import "errors"

var (
	// ErrNotFound indicates the session does not exist or has expired.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidID indicates a malformed session identifier.
	ErrInvalidID = errors.New("invalid session id")
)
