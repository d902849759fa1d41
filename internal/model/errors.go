package model

import (
	"errors"
	"fmt"
)

// Error classes for the three ways a run can go wrong. Source-level failures
// degrade to warnings; only ErrWriteFailed is fatal to the run.
var (
	// ErrSourceUnavailable marks network failures and non-success HTTP statuses.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedResponse marks a response body that does not match the
	// expected schema or markup structure.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrWriteFailed marks an output destination that could not be written.
	ErrWriteFailed = errors.New("write failed")
)

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
