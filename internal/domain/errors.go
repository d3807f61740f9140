package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested row does not
// exist. CheckArrival and ResetTrip translate it into an inactive result
// rather than surfacing it to callers.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. latitude out of range, empty user id).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
