package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned for malformed or out-of-range input,
	// e.g. a rating score outside 1..5 or an oversized waste photo.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfServiceArea is returned when a pickup location lies beyond
	// the configured service radius from the hub.
	ErrOutOfServiceArea = errors.New("location is outside the service area")

	// ErrInvalidTransition is returned when an admin requests a status
	// edge that is not part of the lifecycle transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidState is returned when an operation is not legal for the
	// entity's current status, e.g. assigning a driver to a pickup that
	// is not Approved, or rating a pickup that is not Completed.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrDriverUnavailable is returned when the targeted driver is not
	// in the Available state.
	ErrDriverUnavailable = errors.New("driver is not available")

	// ErrConflict is returned for duplicate writes (a second rating for
	// the same pickup) and for lost optimistic-concurrency races.
	ErrConflict = errors.New("conflicting write")

	// ErrUnauthorized is returned when admin credentials or the bearer
	// token are missing, invalid, or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable wraps transient persistence failures (timeouts,
	// connection errors). The core does not retry; callers decide.
	ErrUnavailable = errors.New("storage unavailable")
)

// ErrorResponse is the JSON error body returned by every handler: a stable
// machine-checkable kind plus a human-readable message.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
