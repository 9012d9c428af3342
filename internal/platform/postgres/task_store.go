package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend. All statements use parameter binding;
// no values are ever concatenated into SQL text.
type TaskStore struct {
	db store.DBTX
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewTaskStore(db store.DBTX) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for TaskStore")
	}

	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
// The database assigns the id and both timestamps; the inserted row is
// returned as persisted.
func (s *TaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, completed, created_at, updated_at
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, title, description).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to insert task", "error", err)
		return nil, fmt.Errorf("failed to insert task: %w", MapError(err))
	}

	return &task, nil
}

// List implements store.TaskStore.List.
// Tasks are returned newest first by creation time.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, fmt.Errorf("failed to query tasks: %w", MapError(err))
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if no row matches the id.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}

	return &task, nil
}

// Update implements store.TaskStore.Update.
// Nil fields in the update coalesce to the currently stored values, and
// updated_at is refreshed by the database. Returns store.ErrTaskNotFound
// if no row matches the id.
func (s *TaskStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    completed = COALESCE($3, completed),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING id, title, description, completed, created_at, updated_at
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query,
		update.Title,
		update.Description,
		update.Completed,
		id,
	).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if !IsNotFoundError(MapError(err)) {
			log.Error("failed to update task", "task_id", id, "error", err)
		}
		return nil, MapError(err)
	}

	return &task, nil
}

// Delete implements store.TaskStore.Delete.
// The deleted row's prior values are returned. Returns
// store.ErrTaskNotFound if no row matches the id.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		DELETE FROM tasks
		WHERE id = $1
		RETURNING id, title, description, completed, created_at, updated_at
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if !IsNotFoundError(MapError(err)) {
			log.Error("failed to delete task", "task_id", id, "error", err)
		}
		return nil, MapError(err)
	}

	return &task, nil
}

// Stats implements store.TaskStore.Stats.
// Counts are computed directly from the table on every call.
func (s *TaskStore) Stats(ctx context.Context) (*domain.TaskStats, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE completed) AS completed,
			COUNT(*) FILTER (WHERE NOT completed) AS pending
		FROM tasks
	`

	var stats domain.TaskStats
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.Pending,
	)
	if err != nil {
		log.Error("failed to compute task stats", "error", err)
		return nil, fmt.Errorf("failed to compute task stats: %w", MapError(err))
	}

	return &stats, nil
}

// Ping implements store.TaskStore.Ping.
// It runs a trivial query to verify the database is reachable.
func (s *TaskStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
