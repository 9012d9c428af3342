package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// healthCheckTimeout bounds each backing-service ping so a hung dependency
// cannot stall the health endpoint.
const healthCheckTimeout = 5 * time.Second

// HealthHandler reports the reachability of the service's backing systems.
// Unlike the request path, where a cache outage degrades silently to store
// reads, the health endpoint is a diagnostic surface and reports an
// unreachable cache as unhealthy.
type HealthHandler struct {
	store  store.TaskStore
	cache  cache.Cache
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(taskStore store.TaskStore, taskCache cache.Cache, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		store:  taskStore,
		cache:  taskCache,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET /health requests.
// Returns 200 when both the database and the cache respond to a ping,
// 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Error("health check: database unreachable", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Error:  "database unreachable",
		})
		return
	}

	if err := h.cache.Ping(ctx); err != nil {
		log.Error("health check: redis unreachable", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Error:  "redis unreachable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services: map[string]string{
			"database": "connected",
			"redis":    "connected",
		},
	})
}
