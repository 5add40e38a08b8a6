package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/task-tracker/internal/api/metrics"
	"github.com/taskhub/task-tracker/internal/core/domain"
	"github.com/taskhub/task-tracker/internal/core/ports"
)

// TaskService implements task CRUD with per-owner authorization.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string, filter ports.TaskFilter) ([]domain.Task, error) {
	var completed *bool
	switch filter {
	case ports.FilterPending:
		f := false
		completed = &f
	case ports.FilterCompleted:
		f := true
		completed = &f
	}
	return s.repo.ListByOwner(ctx, ownerID, completed)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("task_id", created.ID).Str("owner_id", ownerID).Msg("task created")

	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if _, err := s.guardOwnership(ctx, ownerID, taskID); err != nil {
		return nil, err
	}

	update := ports.TaskUpdate{
		DueDate:    input.DueDate,
		DueDateSet: input.DueDateSet,
		Completed:  input.Completed,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		update.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		update.Description = &desc
	}

	updated, err := s.repo.Update(ctx, taskID, update)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task updated")

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.guardOwnership(ctx, ownerID, taskID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task deleted")

	return nil
}

// guardOwnership loads the task and confirms the caller owns it. A foreign
// owner and a missing row both come back as ErrTaskNotFound.
func (s *TaskService) guardOwnership(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.OwnedBy(ownerID) {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
