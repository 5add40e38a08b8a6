package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-tracker/internal/core/domain"
	"github.com/taskhub/task-tracker/internal/core/ports"
)

// TaskHandler handles HTTP requests for task CRUD. Every route runs behind
// the Session middleware, so a resolved identity is always available.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /api/tasks.
//
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Param        filter  query     string  false  "all, pending or completed"
// @Success      200     {object}  listTasksResponse
// @Failure      401     {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := ports.TaskFilter(c.QueryParam("filter"))
	switch filter {
	case ports.FilterPending, ports.FilterCompleted:
	default:
		filter = ports.FilterAll
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), identity.ID, filter)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return c.JSON(http.StatusOK, listTasksResponse{Tasks: tasks})
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	input := ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid due date"})
		}
		input.DueDate = &due
	}

	task, err := h.service.CreateTask(c.Request().Context(), identity.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Title is required"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, taskResponse{Task: task})
}

// Update handles PUT /api/tasks/:id. Only fields present in the body are
// applied; a task owned by another user answers 404, not 403.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Task id"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	input, err := parseUpdateBody(c)
	if err != nil {
		return err
	}

	task, err := h.service.UpdateTask(c.Request().Context(), identity.ID, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Task not found"})
		}
		if errors.Is(err, domain.ErrTitleRequired) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Title is required"})
		}
		return err
	}

	return c.JSON(http.StatusOK, taskResponse{Task: task})
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id    path      string  true  "Task id"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), identity.ID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Task not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
