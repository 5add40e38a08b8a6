package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
)

// Task is a single to-do item owned by exactly one user. OwnerID is set at
// creation and never reassigned.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	OwnerID     string     `json:"userId"`
}

// OwnedBy reports whether the task belongs to the given user. Mutating
// handlers answer "not found" when this is false, so foreign tasks are
// indistinguishable from absent ones.
func (t *Task) OwnedBy(userID string) bool {
	return userID != "" && t.OwnerID == userID
}
