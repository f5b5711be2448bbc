package resilience

import "errors"

// Sentinel errors for resilience operations.
var (
	// ErrTimeout is returned when an attempt exceeds its timeout.
	ErrTimeout = errors.New("resilience: operation timed out")

	// ErrMaxRetriesExceeded wraps the last error once every attempt failed
	// and more than one attempt was allowed.
	ErrMaxRetriesExceeded = errors.New("resilience: max retries exceeded")
)
