package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the session is missing or invalid. It is a
	// gate, never retried.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRejected means the remote store answered with a non-2xx status.
	ErrRejected = errors.New("remote rejected")
	// ErrNetwork means the call never produced a response.
	ErrNetwork = errors.New("network failure")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	err     error
	context string
}

func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap makes the sentinel visible to errors.Is.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}
