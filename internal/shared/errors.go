package shared

import "errors"

var (
	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a write carried a missing or invalid field.
	ErrValidation = errors.New("validation failed")
)
