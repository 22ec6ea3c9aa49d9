package middleware

import (
	"context"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// Resetter restores task state to its initial contents.
type Resetter interface {
	Reset(ctx context.Context) error
}

// PerRequestReset resets the task store before every request, so each
// request observes only the seed data plus its own changes.
func PerRequestReset(resetter Resetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := resetter.Reset(r.Context()); err != nil {
				logger.FromContextOrDefault(r.Context(), nil).
					Error("failed to reset task store", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
