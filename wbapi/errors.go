package wbapi

import "fmt"

// StatusError reports a non-2xx response from the upstream API. It carries
// the status code and the raw body so callers can surface both.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// UnavailableError reports a connection or timeout failure before any
// response was received.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// FormatError reports a 2xx response whose body is not valid JSON.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("upstream returned malformed JSON: %s", e.Detail)
}
