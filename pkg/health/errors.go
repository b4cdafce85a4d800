package health

import "errors"

var (
	// ErrCheckFailed is returned when one or more health checks fail.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for a check that did not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrUnreachable is returned by Reachable when the backend does not answer.
	ErrUnreachable = errors.New("health: backend unreachable")

	// ErrNotConfigured is returned by Reachable when the base URL is empty.
	ErrNotConfigured = errors.New("health: not configured")
)
