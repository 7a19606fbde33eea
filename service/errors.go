package service

import "errors"

// Error kinds surfaced to the HTTP layer. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can pick a status with errors.Is
// while still returning a concrete message to the caller.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
