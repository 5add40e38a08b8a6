package ports

import (
	"context"
	"time"

	"github.com/taskhub/task-tracker/internal/core/domain"
)

// TaskUpdate carries the fields to apply in a partial update. Nil pointers
// leave the stored value untouched. DueDateSet distinguishes "clear the due
// date" (true with nil DueDate) from "leave it alone" (false). An empty
// Description clears the stored one.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueDateSet  bool
	Completed   *bool
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByOwner returns the owner's tasks newest first. A non-nil completed
	// narrows the result to that completion state.
	ListByOwner(ctx context.Context, ownerID string, completed *bool) ([]domain.Task, error)
	Update(ctx context.Context, id string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
