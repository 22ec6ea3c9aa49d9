package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewHTTPMetrics(app.registerer).Middleware)
	r.Use(middleware.Recoverer)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	// Task endpoints, optionally under a prefix such as /api
	r.Group(func(r chi.Router) {
		if app.config.Store.Mode == config.StoreModePerRequest {
			r.Use(apiMiddleware.PerRequestReset(app.taskService))
		}
		if prefix := app.config.Server.RoutePrefix; prefix != "" {
			r.Route(prefix, taskHandler.RegisterRoutes)
		} else {
			taskHandler.RegisterRoutes(r)
		}
	})

	if app.config.Metrics.Enabled {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metricsHandler())
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// metricsHandler serves the registry metrics were registered with, falling
// back to the process-wide gatherer.
func (app *application) metricsHandler() http.Handler {
	if gatherer, ok := app.registerer.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
