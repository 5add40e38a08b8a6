package ports

import (
	"context"
	"time"

	"github.com/taskhub/task-tracker/internal/core/domain"
)

// TaskFilter selects which tasks a list operation returns.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterPending   TaskFilter = "pending"
	FilterCompleted TaskFilter = "completed"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// UpdateTaskInput mirrors TaskUpdate at the use-case boundary; only fields
// explicitly present in the request body are non-nil or flagged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueDateSet  bool
	Completed   *bool
}

// TaskService defines use-case operations on a user's tasks. Every mutation
// is guarded by ownership: a task belonging to another user behaves exactly
// like a missing one.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID string, filter TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, ownerID string, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
