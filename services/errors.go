package services

import (
	"errors"
	"fmt"
	"option-pricer/interfaces"
)

var (
	// ErrValidation marks a request that failed field constraints
	ErrValidation = errors.New("validation failed")
	// ErrComputation marks an unexpected failure inside the pricing arithmetic
	ErrComputation = errors.New("computation failed")
	// ErrInvalidArgument marks pricer inputs outside the model's domain
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError carries every violated constraint of a request together
// with the message rendered for the request's locale.
type ValidationError struct {
	Violations []interfaces.Violation
	Message    string
}

// NewValidationError renders violations for locale
func NewValidationError(locale string, violations []interfaces.Violation) *ValidationError {
	return &ValidationError{
		Violations: violations,
		Message:    FormatViolations(locale, violations),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ComputationError wraps whatever went wrong while pricing
type ComputationError struct {
	Cause error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation failed: %v", e.Cause)
}

func (e *ComputationError) Unwrap() []error {
	return []error{ErrComputation, e.Cause}
}
