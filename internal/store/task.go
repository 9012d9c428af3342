package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
)

// TaskUpdate describes a partial update to a task. Nil fields are left
// unchanged by the store (coalesce-on-null semantics), so a caller can
// flip Completed without touching Title or Description.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}

// TaskStore defines the interface for task data persistence.
// The store is the source of truth for all task records; any cached
// projections are derived from it and never consulted here.
type TaskStore interface {
	// Create inserts a new task with the given title and description.
	// The store assigns the ID and both timestamps. The returned task is
	// the inserted row as persisted.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// List returns all tasks ordered newest first by creation time.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies a partial update to an existing task and refreshes
	// its updated_at timestamp. Fields left nil in the update retain their
	// stored values. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uuid.UUID, update TaskUpdate) (*domain.Task, error)

	// Delete removes a task and returns the deleted row's prior values.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Stats computes the aggregate completion counts directly from the
	// store. The result always reflects current truth; it is never cached.
	Stats(ctx context.Context) (*domain.TaskStats, error)

	// Ping verifies that the underlying database is reachable.
	Ping(ctx context.Context) error
}
