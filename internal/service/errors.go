// Package service provides application-level services for managing tasks.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/domain/query"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Validation failures are returned as domain.ValidationErrors unchanged
// 3. Unexpected errors are wrapped in TaskServiceError
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrTaskNotFound indicates that the task does not exist.
	// API layer maps this to 204 No Content or 404 Not Found depending on the route.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists indicates that a task with the same ID already exists.
	// API layer should map this to HTTP 409 Conflict.
	ErrTaskExists = errors.New("task already exists")

	// ErrInvalidSortKey indicates that the requested sort field is not supported.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidSortKey = query.ErrInvalidSortKey
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "replace_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors and validation failures directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Service-defined sentinel errors pass through
	switch {
	case errors.Is(err, ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrTaskExists):
		return ErrTaskExists
	case errors.Is(err, ErrInvalidSortKey):
		return ErrInvalidSortKey
	}

	// Store-level sentinel errors are mapped to service-level ones
	switch {
	case store.IsNotFoundError(err):
		return ErrTaskNotFound
	case store.IsDuplicateError(err):
		return ErrTaskExists
	}

	// Validation failures carry their own field list
	if isValidation(err) {
		return err
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// isValidation reports whether err is a task validation failure.
func isValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}
