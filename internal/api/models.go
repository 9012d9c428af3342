package api

import (
	"time"

	"github.com/phrazzld/task-api/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// Pointer fields distinguish "omitted" from zero values: omitted fields
// retain their currently stored values.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskListResponse is the envelope for the task collection endpoint.
// Source reports whether the data came from the cache or the database.
type TaskListResponse struct {
	Source string        `json:"source"`
	Data   []domain.Task `json:"data"`
}

// TaskResponse is the envelope for the single-task read endpoint.
type TaskResponse struct {
	Source string      `json:"source"`
	Data   domain.Task `json:"data"`
}

// TaskMutationResponse is the envelope for create/update/delete responses.
type TaskMutationResponse struct {
	Message string      `json:"message"`
	Data    domain.Task `json:"data"`
}

// StatsResponse is the envelope for the aggregate stats endpoint.
type StatsResponse struct {
	Data domain.TaskStats `json:"data"`
}

// HealthResponse is the body returned by the health check endpoint.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Error     string            `json:"error,omitempty"`
}
