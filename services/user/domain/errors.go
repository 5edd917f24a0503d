package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another user already uses the email address.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidUser indicates the user input violates domain constraints.
	ErrInvalidUser = errors.New("invalid user input")
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
