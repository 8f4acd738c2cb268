package analysis

import (
	"errors"
)

// Kind classifies an analysis failure.
type Kind string

const (
	KindInvalidInput     Kind = "InvalidInput"
	KindTransportFailure Kind = "TransportFailure"
	KindEmptyOutput      Kind = "EmptyOutput"
	KindMalformedOutput  Kind = "MalformedOutput"
)

// Error is the single failure value returned by Analyze.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Diagnostics holds provider metadata such as finishReason or
	// blockedCategories. Only set for EmptyOutput.
	Diagnostics map[string]string `json:"diagnostics,omitempty"`
	Err         error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err when it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}
