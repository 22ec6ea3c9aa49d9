package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrTaskExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, service.ErrInvalidSortKey),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var fieldErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Task not found."

	case errors.Is(err, service.ErrTaskExists),
		errors.Is(err, store.ErrDuplicate):
		return "A task with this ID already exists."

	case errors.Is(err, service.ErrInvalidSortKey):
		return "Invalid sort parameter."

	case errors.Is(err, domain.ErrValidation):
		return shared.ValidationFailedMessage

	// Path and query parameter problems name the offending parameter
	case errors.As(err, &fieldErr):
		return "Invalid " + fieldErr.Field + ": " + fieldErr.Message

	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid request format"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. Validation failures are
// answered with their full violation list; every other error is mapped to a
// status code and a safe message. defaultMsg, when non-empty, replaces the
// generic message of unexpected (500) errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		shared.RespondWithValidationErrors(w, r, verrs)
		return
	}

	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError && defaultMsg != "" {
		safeMessage = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
