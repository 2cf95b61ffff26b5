// Package apperrors defines the sentinel errors shared by the repository
// and handler layers. Repositories translate persistence failures into these
// values so that handlers can map them to HTTP statuses without knowing
// anything about the storage engine.
package apperrors

import "errors"

// ErrValidation is returned when required input is missing or malformed,
// e.g. creating a Location without a name. Handlers translate it into 400.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when a lookup by id or key yields no result.
// Handlers translate it into 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a save violates a uniqueness constraint,
// such as a duplicate event title. Handlers translate it into 409.
var ErrConflict = errors.New("conflict")
