package apiclient

import (
	"errors"
	"fmt"
)

// ErrTransport matches every *TransportError via errors.Is.
var ErrTransport = errors.New("api transport failure")

// DefaultErrorMessage is used when a failed response carries no usable message.
const DefaultErrorMessage = "api request failed"

// TransportError reports a round trip that never produced a response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Error is returned when the service answered with a non-2xx status.
// Its message is the best human-readable text found in the response body.
type Error struct {
	StatusCode int
	Message    string
	Body       any
}

func (e *Error) Error() string { return e.Message }

// StatusCode extracts the HTTP status from an application error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
