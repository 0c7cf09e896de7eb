package model

import "errors"

var (
	// ErrUnknownField indicates an edit addressed a field that does not exist.
	ErrUnknownField = errors.New("unknown field")

	// ErrIndexOutOfRange indicates an entry index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLastEntry indicates an attempt to remove the only remaining entry of a list.
	ErrLastEntry = errors.New("cannot remove the last entry")
)
