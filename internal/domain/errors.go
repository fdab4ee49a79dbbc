package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrIncompleteProtocol = errors.New("incomplete protocol")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IncompleteProtocolError is returned when a subject has no response for one
// or more of the ten cards. Missing holds the cards as Roman numerals in
// ascending order.
type IncompleteProtocolError struct {
	Missing []string
}

func (e *IncompleteProtocolError) Error() string {
	return "incomplete protocol: no responses for card " + strings.Join(e.Missing, ", ")
}

func (e *IncompleteProtocolError) Unwrap() error { return ErrIncompleteProtocol }
