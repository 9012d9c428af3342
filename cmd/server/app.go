package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB
	cache  cache.Cache

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// database connection, and cache that must be established before
// application initialization.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	taskCache cache.Cache,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		cache:  taskCache,
	}

	// Initialize stores
	app.taskStore = postgres.NewTaskStore(db)

	// Initialize the cache-aside task service
	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.cache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
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
	// Close cache connection
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("Error closing cache connection", "error", err)
		}
	}

	// Close database connection
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
