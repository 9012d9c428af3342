package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/redis"
)

// setupAppCache creates the Redis-backed cache and verifies connectivity.
// An unreachable cache is not fatal: the service degrades to store-only
// reads, so the client is returned either way and failures are only logged.
func setupAppCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	taskCache := redis.New(redis.Config{
		Host:     cfg.Cache.Host,
		Port:     cfg.Cache.Port,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := taskCache.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable at startup, reads will fall back to the database",
			"host", cfg.Cache.Host,
			"error", err)
		return taskCache
	}

	logger.Info("Redis connection established", "host", cfg.Cache.Host)
	return taskCache
}
