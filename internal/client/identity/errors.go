package identity

import (
	"errors"
	"fmt"
)

// Kind classifies a client error by what failed.
type Kind int

const (
	// KindNetwork means no response was received from the identity service.
	KindNetwork Kind = iota + 1
	// KindValidation means the service rejected the request (4xx) with field-level messages.
	KindValidation
	// KindServer means the service answered 5xx or with a body the client could not parse.
	KindServer
)

// Kind sentinels for errors.Is matching. A *Error with KindValidation
// matches ErrValidation, and so on.
var (
	// ErrNetwork indicates the identity service was unreachable.
	ErrNetwork = errors.New("identity service unreachable")
	// ErrValidation indicates the identity service rejected the request.
	ErrValidation = errors.New("request rejected by identity service")
	// ErrServer indicates the identity service failed or returned a malformed response.
	ErrServer = errors.New("identity service error")
)

// Error is the typed failure returned by every client operation.
// Message is always user-presentable: it is the service's own message
// when one was provided, or the operation's fixed default otherwise.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message is the user-facing description of the failure.
	Message string
	// StatusCode is the HTTP status of the response, or 0 when none was received.
	StatusCode int
	// Fields holds field-level validation messages keyed by field name, when provided.
	Fields map[string][]string
	// cause is the underlying transport or decoding error, if any.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

// Unwrap exposes the underlying transport or decoding error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches the kind sentinels, so errors.Is(err, ErrValidation)
// works without unwrapping to *Error first.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrServer:
		return e.Kind == KindServer
	default:
		return false
	}
}

// networkError builds a KindNetwork error around a transport failure.
func networkError(fallback string, cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fallback,
		cause:   cause,
	}
}
