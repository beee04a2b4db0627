package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (or a referenced parent such as the owning trip) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a uniqueness constraint:
// duplicate user email, duplicate itinerary day per trip, or duplicate
// budget category name per trip.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank required field, malformed currency code).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
