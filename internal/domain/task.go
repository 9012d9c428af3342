package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work tracked by the system.
// The database is the authoritative source for every field; cached copies
// are projections that expire or are invalidated on writes.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskStats holds aggregate counts over all tasks.
// Total is always the sum of Completed and Pending.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Validation errors for the Task entity.
var (
	// ErrTaskIDEmpty indicates a task with a nil UUID.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTitleEmpty indicates a task with no title. Descriptions are
	// optional; titles are not.
	ErrTitleEmpty = errors.New("task title cannot be empty")

	// ErrTimestampsInvalid indicates UpdatedAt precedes CreatedAt.
	ErrTimestampsInvalid = errors.New("task updated_at cannot be before created_at")
)

// Validate checks that the task data meets the domain invariants.
// Returns a specific validation error if any check fails, nil otherwise.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}
	if t.Title == "" {
		return ErrTitleEmpty
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrTimestampsInvalid
	}
	return nil
}
