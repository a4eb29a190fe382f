package cartola

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned before any request is made when the caller
// passes an unusable argument, such as an empty endpoint.
var ErrInvalidArgument = errors.New("invalid argument")

// UpstreamError reports a response from the Cartola API with a status other
// than 200. No distinction is made between 4xx and 5xx.
type UpstreamError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unexpected status code: %d (%s)", e.StatusCode, e.URL)
}

// TransportError wraps failures that happen before a response is read:
// DNS, refused connections, timeouts, cancelled contexts.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error making request to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a 200 response whose body is not the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
