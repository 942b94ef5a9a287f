// Package apierr holds the error taxonomy shared by the transport and the
// resource repository.
package apierr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is returned when a request target cannot be built.
	ErrInvalidURL = errors.New("invalid url")
	// ErrNoData is returned when a successful response carries no usable body,
	// or an image endpoint answers with something other than a PNG.
	ErrNoData = errors.New("no data")
)

// TransportError wraps a network level failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a body arrived but could not be parsed into
// the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusError is returned for any non-2xx response. Body holds at most the
// first few hundred bytes of the response for diagnostics.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}
	return false
}
