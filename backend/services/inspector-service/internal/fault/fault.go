package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for callers and for the HTTP boundary.
type Kind string

const (
	KindConfigNotFound        Kind = "config_not_found"
	KindConfigMalformed       Kind = "config_malformed"
	KindInvalidInput          Kind = "invalid_input"
	KindRoomNotFound          Kind = "room_not_found"
	KindNoSensorsConfigured   Kind = "no_sensors_configured"
	KindQueryExecution        Kind = "query_execution"
	KindDependencyUnavailable Kind = "dependency_unavailable"
)

// Error is a classified failure. Message is safe to return to callers;
// Err keeps the underlying cause for logs and errors.Is checks.
type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a classified error with the given message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error, keeping it on the chain.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of err; empty when err is unclassified.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
