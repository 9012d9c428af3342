package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/cache"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// fakeTaskStore is an in-memory store.TaskStore for exercising the
// cache-aside service without a database. Setting failWith makes every
// operation return that error.
type fakeTaskStore struct {
	mu       sync.Mutex
	tasks    map[uuid.UUID]domain.Task
	order    []uuid.UUID // insertion order; List returns the reverse
	clock    time.Time
	failWith error

	createCalls int
	listCalls   int
	getCalls    int
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so created_at ordering is deterministic.
func (f *fakeTaskStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeTaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	now := f.tick()
	task := domain.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks[task.ID] = task
	f.order = append(f.order, task.ID)
	return &task, nil
}

func (f *fakeTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	tasks := make([]domain.Task, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		tasks = append(tasks, f.tasks[f.order[i]])
	}
	return tasks, nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	task, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

func (f *fakeTaskStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}

	task, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	task.UpdatedAt = f.tick()

	f.tasks[id] = task
	return &task, nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}

	task, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	delete(f.tasks, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return &task, nil
}

func (f *fakeTaskStore) Stats(ctx context.Context) (*domain.TaskStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}

	stats := &domain.TaskStats{}
	for _, task := range f.tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	return stats, nil
}

func (f *fakeTaskStore) Ping(ctx context.Context) error {
	return f.failWith
}

// fakeCache is an in-memory cache.Cache. Setting failWith makes every
// operation return that error, simulating a cache outage.
type fakeCache struct {
	mu       sync.Mutex
	data     map[string]string
	failWith error

	getCalls int
	setCalls int
	delCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.failWith != nil {
		return "", f.failWith
	}

	val, ok := f.data[key]
	if !ok || val == "" {
		return "", cache.ErrNotFound
	}
	return val, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failWith != nil {
		return f.failWith
	}

	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delCalls++
	if f.failWith != nil {
		return f.failWith
	}

	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error {
	return f.failWith
}

func (f *fakeCache) Close() error {
	return nil
}

// has reports whether a key is present in the fake cache.
func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}
