package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/numera/internal/domain"
)

// Error handling principles:
// 1. Invalid input is reported with domain validation errors, returned unwrapped
// 2. Unexpected errors are wrapped in NumerologyServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps validation errors to 400 and everything else to 500
var (
	// ErrMissingDependency indicates a service was constructed without a required collaborator.
	ErrMissingDependency = errors.New("missing required dependency")
)

// NumerologyServiceError wraps unexpected errors from the numerology service with context.
type NumerologyServiceError struct {
	// Operation is the operation that failed (e.g., "profile", "forecast_daily")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for NumerologyServiceError.
func (e *NumerologyServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numerology service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("numerology service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *NumerologyServiceError) Unwrap() error {
	return e.Err
}

// NewNumerologyServiceError creates a new NumerologyServiceError.
// Validation errors are returned directly without wrapping.
func NewNumerologyServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	return &NumerologyServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
