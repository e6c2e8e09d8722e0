// Package apperr defines the user-facing error type shared across Ascend
package apperr

import "fmt"

// Error is an application error with a message template and an optional
// underlying cause.
type Error struct {
	Cause   error
	origin  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		origin:  e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		origin:  e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the error this one was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.origin
}

func (e *Error) root() *Error {
	if e.origin != nil {
		return e.origin
	}

	return e
}
