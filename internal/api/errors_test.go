package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped store not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"service exists", service.ErrTaskExists, http.StatusConflict},
		{"store duplicate", store.ErrTaskExists, http.StatusConflict},
		{"validation", domain.ValidationErrors{{Field: "title", Message: "bad"}}, http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID), http.StatusBadRequest},
		{"invalid format", fmt.Errorf("%w: eof", domain.ErrInvalidFormat), http.StatusBadRequest},
		{"sort key", service.ErrInvalidSortKey, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"not found", service.ErrTaskNotFound, "Task not found."},
		{"exists", service.ErrTaskExists, "A task with this ID already exists."},
		{"sort key", service.ErrInvalidSortKey, "Invalid sort parameter."},
		{"validation", domain.ValidationErrors{{Field: "title", Message: "bad"}}, "Validation failed"},
		{"parameter", domain.NewValidationError("priority", "must be an integer", domain.ErrInvalidFormat),
			"Invalid priority: must be an integer"},
		{"format", fmt.Errorf("%w: unexpected EOF", domain.ErrInvalidFormat), "Invalid request format"},
		{"entity", store.ErrInvalidEntity, "Invalid entity data"},
		{"internal details hidden", errors.New("connection refused on 10.0.0.1"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Run("validation errors list every violation", func(t *testing.T) {
		verrs := domain.ValidationErrors{
			{Field: "title", Message: "Please provide the title of the task."},
			{Field: "priority", Message: "Please prioritize the task with a number from 1 to 5."},
		}
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/tasks", nil)

		HandleAPIError(w, r, fmt.Errorf("create: %w", verrs), "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Equal(t, []domain.FieldError(verrs), resp.Errors)
	})

	t.Run("default message replaces generic internal error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		HandleAPIError(w, r, errors.New("disk on fire"), "Failed to list tasks")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk on fire")
		assert.Contains(t, w.Body.String(), "Failed to list tasks")
	})

	t.Run("default message does not hide client errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/tasks/9", nil)

		HandleAPIError(w, r, service.ErrTaskNotFound, "Failed to get task")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Task not found.")
	})
}
