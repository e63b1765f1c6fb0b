package domain

import "errors"

// Error categories. Services wrap these into specific sentinels so handlers
// can map a failure to a stable HTTP status with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
)
