package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the jobs API rejects the app id/key.
	ErrUnauthorized = errors.New("unauthorized: check the API app id and app key")

	// ErrNoJobs means the search succeeded but returned no postings.
	ErrNoJobs = errors.New("no jobs found")
)

// HTTPError wraps a non-200 status from the jobs API.
type HTTPError struct {
	StatusCode int
	Reason     string // status text, e.g. "Internal Server Error"
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d %s: %v", e.StatusCode, e.Reason, e.Err)
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.Reason)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
