package tracker

import "errors"

var (
	// ErrUnavailable indicates the tracker service is unreachable.
	ErrUnavailable = errors.New("tracker service unavailable")

	// ErrTimeout indicates the tracker request exceeded the configured timeout.
	ErrTimeout = errors.New("tracker request timed out")

	// ErrUnauthorized indicates the bearer token was rejected.
	ErrUnauthorized = errors.New("tracker rejected credentials")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("tracker retry attempts exhausted")
)
