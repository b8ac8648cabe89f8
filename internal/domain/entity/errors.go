package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a request that failed validation. ValidationError matches it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID means an identifier is not a 24 character hex object id.
	ErrInvalidID = errors.New("invalid id: must be a 24 character hex string")
)

// ValidationError names the article, user, publisher or testimonial field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports ErrInvalidInput so callers can branch with errors.Is alone.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
