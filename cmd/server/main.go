// Package main implements the entry point for the task tracking API server,
// which keeps tasks in memory and serves them over a REST interface.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// main is the entry point for the tasks-api server.
// It loads configuration, sets up logging, wires the application and runs
// the HTTP server until SIGINT or SIGTERM.
func main() {
	fmt.Println("Tasks API Server Starting...")

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, slog.Default(), prometheus.DefaultRegisterer)
	if err != nil {
		slog.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err = logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"route_prefix", cfg.Server.RoutePrefix,
		"store_mode", cfg.Store.Mode)

	slog.Debug("Metrics configuration",
		"enabled", cfg.Metrics.Enabled,
		"path", cfg.Metrics.Path)

	return cfg, nil
}
