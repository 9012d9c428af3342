package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// Source identifies which backing system produced a read result.
type Source string

const (
	// SourceCache marks results served from the cache.
	SourceCache Source = "cache"

	// SourceDatabase marks results served from the store.
	SourceDatabase Source = "database"
)

// TaskService provides task CRUD operations with cache-aside semantics:
// reads are cache-first with lazy population, writes invalidate and never
// populate. All cache failures are absorbed here; only store failures
// propagate to the caller.
type TaskService interface {
	// List returns all tasks newest first, together with the source that
	// served them. A cache hit may be up to cache.DefaultTTL stale.
	List(ctx context.Context) ([]domain.Task, Source, error)

	// Get returns a single task by id. Returns store.ErrTaskNotFound if
	// the task does not exist, whether or not a cache entry is present.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, Source, error)

	// Create validates and inserts a new task, then invalidates the
	// cached collection. Returns domain.ErrTitleEmpty for a blank title.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// Update applies a partial update, then invalidates both the cached
	// collection and the task's own cache entry.
	Update(ctx context.Context, id uuid.UUID, update store.TaskUpdate) (*domain.Task, error)

	// Delete removes a task, returning its prior values, then invalidates
	// both the cached collection and the task's own cache entry.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Stats returns aggregate completion counts straight from the store.
	// Stats are never cached: the aggregate is cheap and staleness here
	// is less acceptable than for listings.
	Stats(ctx context.Context) (*domain.TaskStats, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	store  store.TaskStore
	cache  cache.Cache
	logger *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store and
// cache. It returns an error if either backing dependency is nil.
func NewTaskService(
	taskStore store.TaskStore,
	taskCache cache.Cache,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if taskCache == nil {
		return nil, fmt.Errorf("taskCache cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		store:  taskStore,
		cache:  taskCache,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.Task, Source, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Cache first: a hit is returned as-is, tagged cache-sourced.
	if cached, ok := s.cacheGet(ctx, cache.AllTasksKey); ok {
		var tasks []domain.Task
		if err := json.Unmarshal([]byte(cached), &tasks); err == nil {
			log.Debug("returning cached task list", slog.Int("count", len(tasks)))
			return tasks, SourceCache, nil
		}
		// Corrupt entry: fall through to the store, which overwrites it.
		log.Warn("discarding unparseable cached task list")
	}

	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, SourceDatabase, err
	}

	s.cacheSet(ctx, cache.AllTasksKey, tasks)
	log.Debug("returning task list from database", slog.Int("count", len(tasks)))
	return tasks, SourceDatabase, nil
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Task, Source, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	key := cache.TaskKey(id)

	if cached, ok := s.cacheGet(ctx, key); ok {
		var task domain.Task
		if err := json.Unmarshal([]byte(cached), &task); err == nil {
			return &task, SourceCache, nil
		}
		log.Warn("discarding unparseable cached task", slog.String("task_id", id.String()))
	}

	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, SourceDatabase, err
	}

	s.cacheSet(ctx, key, task)
	return task, SourceDatabase, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(
	ctx context.Context,
	title, description string,
) (*domain.Task, error) {
	if title == "" {
		return nil, domain.ErrTitleEmpty
	}

	task, err := s.store.Create(ctx, title, description)
	if err != nil {
		return nil, err
	}

	// The collection changed; evict rather than merge. The next read
	// repopulates from the store.
	s.invalidate(ctx, cache.AllTasksKey)
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	task, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.AllTasksKey, cache.TaskKey(id))
	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.AllTasksKey, cache.TaskKey(id))
	return task, nil
}

// Stats implements TaskService.Stats.
func (s *taskServiceImpl) Stats(ctx context.Context) (*domain.TaskStats, error) {
	return s.store.Stats(ctx)
}

// cacheGet reads a key from the cache, treating every failure as a miss.
func (s *taskServiceImpl) cacheGet(ctx context.Context, key string) (string, bool) {
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).
				Warn("cache read failed, falling back to database",
					slog.String("key", key),
					slog.String("error", err.Error()))
		}
		return "", false
	}
	return val, true
}

// cacheSet serializes v and stores it best-effort under key with the
// default TTL. Reads are the only writers of cache entries.
func (s *taskServiceImpl) cacheSet(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Warn("failed to serialize cache entry", slog.String("key", key),
				slog.String("error", err.Error()))
		return
	}

	if err := s.cache.Set(ctx, key, string(data), cache.DefaultTTL); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Warn("cache write failed", slog.String("key", key),
				slog.String("error", err.Error()))
	}
}

// invalidate deletes cache keys best-effort after a committed store write.
// A failed delete is only logged: the TTL still bounds how long a stale
// entry can survive.
func (s *taskServiceImpl) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Warn("cache invalidation failed",
				slog.Any("keys", keys),
				slog.String("error", err.Error()))
	}
}
