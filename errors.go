package voltage

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports required identifiers that were missing from a call.
// It is returned before any network request is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required field(s): " + strings.Join(e.Missing, ", ")
}

// TransportError wraps a failure below the HTTP layer: connection refused,
// DNS failure, or a request that ran out of time. Timeout is set when the
// request timed out; Status is then the conventional 408.
type TransportError struct {
	Timeout bool
	Status  int
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timeout: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a non-empty response body that was not valid JSON.
type ParseError struct {
	Status int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in response (HTTP %d): %v", e.Status, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError is a well-formed non-2xx response. Message is taken from the
// payload's "message" field when present, otherwise "HTTP <status>: <text>".
// Detail holds the full parsed body.
type APIError struct {
	Status  int
	Message string
	Detail  map[string]any
}

func (e *APIError) Error() string { return e.Message }

// PaymentFailedError reports a payment that reached the failed status.
type PaymentFailedError struct {
	PaymentID string
	Type      string
	Detail    string
}

func (e *PaymentFailedError) Error() string {
	if e.Type == "expired" {
		return fmt.Sprintf("payment %s expired", e.PaymentID)
	}
	if e.Detail != "" {
		return fmt.Sprintf("payment %s failed: %s", e.PaymentID, e.Detail)
	}
	return fmt.Sprintf("payment %s failed", e.PaymentID)
}

// PollTimeoutError reports that the polling deadline passed before the
// payment reached a terminal status.
type PollTimeoutError struct {
	Timeout time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("polling timed out after %s", e.Timeout)
}

// PollExhaustedError reports that the attempt ceiling was reached before the
// payment left its transient status.
type PollExhaustedError struct {
	Attempts int
}

func (e *PollExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts", e.Attempts)
}
