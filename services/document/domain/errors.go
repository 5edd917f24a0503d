package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the document domain. Use errors.Is() to check these.
var (
	// ErrDocumentNotFound indicates the requested document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates the create command violates domain
	// constraints: unknown tag, empty lines, bad quantities, or a line
	// referencing a missing or inactive item.
	ErrInvalidDocument = errors.New("invalid document input")
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
