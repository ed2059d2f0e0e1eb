// Package errors contains helper functions for wrapping errors with stack traces, stack output, and panic recovery.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error from the given value and wraps it in an Error type that contains the stack trace.
// If the given value is an error that already has a stack trace, it is used directly.
// If the given value is nil, returns nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error and wraps it in an Error type that contains the stack trace.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has
// a stack trace, it is used directly. If the given error is nil, returns nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// ContainsStackTrace returns true if the given error contains a stack trace.
// Useful to avoid creating a nested stack trace.
func ContainsStackTrace(err error) bool {
	for {
		if _, ok := err.(interface{ ErrorStack() string }); ok {
			return true
		}

		if err = errors.Unwrap(err); err == nil {
			break
		}
	}

	return false
}

// ErrorStack returns a stack trace if one is available.
func ErrorStack(err error) string {
	for {
		if err, ok := err.(interface{ ErrorStack() string }); ok {
			return err.ErrorStack()
		}

		if err = errors.Unwrap(err); err == nil {
			break
		}
	}

	return ""
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(New(err))
	}
}
