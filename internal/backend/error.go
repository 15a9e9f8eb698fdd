package backend

import (
	"errors"
	"fmt"
)

// MalformedResponseError means the backend answered 2xx with a body
// that does not match the documented shape. It is never papered over
// with defaults; a fabricated number is worse than a visible failure.
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func newMalformedResponse(endpoint, reason string) *MalformedResponseError {
	return &MalformedResponseError{
		Endpoint: endpoint,
		Reason:   reason,
	}
}

func IsMalformedResponse(err error) *MalformedResponseError {
	if err == nil {
		return nil
	}

	var malformedErr *MalformedResponseError

	if errors.As(err, &malformedErr) {
		return malformedErr
	}

	return nil
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Reason)
}

// StatusError is a non-2xx answer on a read endpoint, carrying the
// backend's message when one was sent.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func IsStatusError(err error) *StatusError {
	if err == nil {
		return nil
	}

	var statusErr *StatusError

	if errors.As(err, &statusErr) {
		return statusErr
	}

	return nil
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	}

	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
