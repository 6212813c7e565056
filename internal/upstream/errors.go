package upstream

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks an upstream body that could not be decoded
// as the expected JSON shape.
var ErrMalformedResponse = errors.New("malformed upstream response")

// NetworkError wraps a transport-level failure (connectivity, timeout).
// Safe to retry; no state was confirmed upstream.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError carries a non-2xx upstream response. Message is taken from
// the upstream `message` field when present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

// NewServerError builds a ServerError with a generic message fallback.
func NewServerError(status int, message string) *ServerError {
	if message == "" {
		message = fmt.Sprintf("upstream request failed with status %d", status)
	}
	return &ServerError{Status: status, Message: message}
}
