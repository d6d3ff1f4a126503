package transcription

import (
	"errors"
	"fmt"
)

// Kind classifies why a transcription request failed
type Kind string

const (
	KindInput    Kind = "input"
	KindStorage  Kind = "storage"
	KindProvider Kind = "provider"
)

// Error is returned by Service.Transcribe for every failure
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the Kind of err, or KindProvider for errors that did not
// come from this package.
func KindOf(err error) Kind {
	var tErr *Error
	if errors.As(err, &tErr) {
		return tErr.Kind
	}
	return KindProvider
}
