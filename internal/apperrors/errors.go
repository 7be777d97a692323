package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an operation violates the current state of a
// resource (wrong journey step, deal already cancelled, unit not available).
var ErrConflict = errors.New("operation conflicts with current state")

// ErrForbidden indicates that the operation is not permitted for the
// requesting channel or actor.
var ErrForbidden = errors.New("operation not permitted")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
