package api

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a 404 on a single-resource fetch. Callers match it with
// errors.Is to render a dedicated not-found state.
var ErrNotFound = errors.New("resource not found")

// Kind classifies a client failure.
type Kind int

const (
	// KindTransport covers network failures before any HTTP status arrived.
	KindTransport Kind = iota
	// KindServer covers non-2xx responses other than 404.
	KindServer
	// KindNotFound covers 404 responses.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error is the uniform failure value returned by every client method.
type Error struct {
	Kind       Kind
	StatusCode int
	// Code is the machine-readable code from the backend error body, when one
	// could be decoded.
	Code string
	// Message is human-readable: the server-supplied message for server
	// errors, or a transport description otherwise.
	Message string

	err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	case KindNotFound:
		return e.Message
	default:
		return fmt.Sprintf("backend error (HTTP %d): %s", e.StatusCode, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsNotFound reports whether err came from a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), err: err}
}

func serverError(status int, code, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	if status == 404 {
		return &Error{Kind: KindNotFound, StatusCode: status, Code: code, Message: message, err: ErrNotFound}
	}
	return &Error{Kind: KindServer, StatusCode: status, Code: code, Message: message}
}
