package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger     *slog.Logger
	registerer prometheus.Registerer

	// Store (using the interface for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService

	// Event system
	eventEmitter events.EventEmitter

	now func() time.Time
}

// newApplication creates a new application instance with all dependencies
// initialized. Metrics are registered with reg.
func newApplication(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	app := &application{
		config:     cfg,
		logger:     logger,
		registerer: reg,
		now:        time.Now,
	}

	seed := domain.SeedTasks
	if !cfg.Store.Seed {
		seed = func(time.Time) []domain.Task { return nil }
	}

	// Initialize store; it is filled by the Reset below
	app.taskStore = memory.NewTaskStore(nil, logger)

	// Initialize event emitter with the audit log
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	app.eventEmitter = emitter

	// Initialize task service
	var err error
	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.eventEmitter,
		logger,
		service.WithClock(func() time.Time { return app.now() }),
		service.WithSeed(seed),
		service.WithMetrics(service.NewMetrics(reg)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if err := app.taskService.Reset(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed task store: %w", err)
	}

	logger.Info("Application initialized successfully",
		"store_mode", cfg.Store.Mode,
		"seeded", cfg.Store.Seed)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
