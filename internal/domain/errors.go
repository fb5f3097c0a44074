package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an input fails validation.
	// The more specific errors below are always reported alongside it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a birth date is malformed, is not a real
	// calendar day, or falls outside 1900-01-01..today.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidName is returned when a name contains no letters.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAsOfDate is returned when an as-of date is malformed or precedes
	// the birth date it is combined with.
	ErrInvalidAsOfDate = errors.New("invalid as-of date")
)

// ValidationError describes which input field was rejected and why.
// It matches both ErrValidation and the wrapped sentinel with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
}

// Unwrap returns the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation as a match in addition to the wrapped error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
