// Package simerrors implements the uniform error taxonomy from spec.md §7,
// following gofulmen/errors' ErrorEnvelope pattern: a typed kind, a message,
// JSON-marshalable, built up with fluent With* helpers.
package simerrors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies why a kernel or engine call failed.
type Kind string

const (
	// InvalidInput means the input violates a kernel precondition, e.g.
	// Hamming on unequal-length strings, or a string over max length.
	InvalidInput Kind = "invalid_input"

	// InvalidConfiguration means a required parameter is missing or out of
	// range, e.g. Tversky without alpha/beta, ngram_size=0.
	InvalidConfiguration Kind = "invalid_configuration"

	// ComputationOverflow means an internal invariant was violated during
	// computation. Always recoverable: the call fails, state is unchanged.
	ComputationOverflow Kind = "computation_overflow"

	// ThreadingError means an async submission arrived after shutdown.
	ThreadingError Kind = "threading_error"

	// Unknown is the catch-all for unexpected failures from lower layers.
	Unknown Kind = "unknown"
)

// Error is the uniform error value returned by kernels and the engine. It
// never carries a stack trace or correlation ID — those are ambient
// concerns for a distributed system, not a single-process library — but it
// keeps the teacher's envelope shape: a code, a message, and JSON support.
type Error struct {
	Kind    Kind                   `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches structured detail fields and returns the receiver for
// chaining.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// MarshalJSON ensures the envelope shape serializes as a plain object.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	return json.Marshal((*alias)(e))
}

// Is supports errors.Is comparisons against a Kind-only sentinel created via
// New(kind, "").
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, and
// Unknown otherwise.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return Unknown
}

// Wrap converts an arbitrary error from a lower layer into an Unknown
// simerrors.Error, preserving the original message. This is how the engine
// implements spec.md §7's "converts any unexpected exception... to Unknown"
// propagation policy.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*Error); ok {
		return se
	}
	return New(Unknown, err.Error())
}
