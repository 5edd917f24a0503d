package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameTaken indicates another item already uses the name
	// (compared case-insensitively).
	ErrItemNameTaken = errors.New("item name already exists")

	// ErrItemInUse indicates the item is referenced by at least one document
	// line and cannot be deactivated.
	ErrItemInUse = errors.New("item used in documents")

	// ErrInvalidItem indicates the item input violates domain constraints.
	ErrInvalidItem = errors.New("invalid item input")
)

// Error pairs one of the sentinels above with an exact human-readable
// message. It unwraps to its sentinel so errors.Is keeps working while the
// HTTP layer can surface the message verbatim.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// NewError builds a domain Error of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}
