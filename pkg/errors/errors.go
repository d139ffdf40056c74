// Package errors provides an error type that chains a sentinel error
// with a wrapped cause, so callers can match on the sentinel with
// errors.Is while still seeing the underlying failure.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New builds a new sentinel error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error carries a fixed message plus an optional wrapped cause.
//
// Unlike fmt.Errorf("%w", ...), wrapping does not alter the message of
// the sentinel: comparisons against the sentinel keep working.
type Error struct {
	msg string
	err error
}

// Error message
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap the cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a cause under this error. The receiver is copied so sentinels
// declared as package variables are never mutated.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err}
}

// WrapMessage wraps a formatted message as the cause of this error
func (e *Error) WrapMessage(format string, args ...interface{}) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is reports whether this error or its cause matches target
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	if o, ok := target.(*Error); ok {
		return e.msg == o.msg
	}
	return false
}

// As finds the first error in err's chain matching target
// (shortcut to the standard library)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (shortcut to the standard library)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
