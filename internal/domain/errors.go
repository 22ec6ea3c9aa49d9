// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a task fails validation.
	// ValidationErrors unwraps to it so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidFormat is returned when a value is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError is a single violated rule: the field it applies to and the
// message shown to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every rule violated by a task.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Fields returns the distinct field names in violation order.
func (v ValidationErrors) Fields() []string {
	seen := make(map[string]bool, len(v))
	var fields []string
	for _, fe := range v {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// ValidationError describes a single invalid input value outside of task
// payloads, such as a path or query parameter.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
