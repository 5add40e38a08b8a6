package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-tracker/internal/core/auth"
	"github.com/taskhub/task-tracker/internal/core/domain"
	"github.com/taskhub/task-tracker/internal/core/ports"
)

type stubTaskService struct {
	listFn   func(ctx context.Context, ownerID string, filter ports.TaskFilter) ([]domain.Task, error)
	createFn func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error)
	updateFn func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn func(ctx context.Context, ownerID, taskID string) error
}

func (s *stubTaskService) ListTasks(ctx context.Context, ownerID string, filter ports.TaskFilter) ([]domain.Task, error) {
	return s.listFn(ctx, ownerID, filter)
}

func (s *stubTaskService) CreateTask(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubTaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, ownerID, taskID, input)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return s.deleteFn(ctx, ownerID, taskID)
}

func taskContext(t *testing.T, e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &auth.Identity{ID: "user_1", Email: "alice@example.com"})
	return c, rec
}

func TestTaskHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string, filter ports.TaskFilter) ([]domain.Task, error) {
			if ownerID != "user_1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			if filter != ports.FilterPending {
				t.Fatalf("unexpected filter: %s", filter)
			}
			return []domain.Task{{ID: "task_1", Title: "buy milk", OwnerID: ownerID}}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodGet, "/api/tasks?filter=pending", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["tasks"]) != 1 || resp["tasks"][0]["title"] != "buy milk" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_List_UnknownFilter(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string, filter ports.TaskFilter) ([]domain.Task, error) {
			if filter != ports.FilterAll {
				t.Fatalf("unknown filter not normalized: %s", filter)
			}
			return nil, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodGet, "/api/tasks?filter=bogus", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// A nil slice still serializes as an empty JSON array.
	if body := strings.TrimSpace(rec.Body.String()); body != `{"tasks":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
			if input.Title != "report" || input.DueDate == nil {
				t.Fatalf("unexpected input: %+v", input)
			}
			if got := input.DueDate.Format("2006-01-02"); got != "2026-09-15" {
				t.Fatalf("unexpected due date: %s", got)
			}
			return &domain.Task{ID: "task_1", Title: input.Title, OwnerID: ownerID, DueDate: input.DueDate}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPost, "/api/tasks", `{"title":"report","dueDate":"2026-09-15"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_TitleRequired(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTitleRequired
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPost, "/api/tasks", `{"title":""}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Title is required" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if taskID != "task_1" {
				t.Fatalf("unexpected task id: %s", taskID)
			}
			if input.Title != nil || input.Description != nil {
				t.Fatalf("absent fields parsed as present: %+v", input)
			}
			if input.Completed == nil || !*input.Completed {
				t.Fatalf("completed not parsed: %+v", input)
			}
			if !input.DueDateSet || input.DueDate != nil {
				t.Fatalf("null dueDate should clear: %+v", input)
			}
			return &domain.Task{ID: taskID, Title: "report", Completed: true, OwnerID: ownerID}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPut, "/api/tasks/task_1", `{"completed":true,"dueDate":null}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_DueDateValue(t *testing.T) {
	e := echo.New()
	want := time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if !input.DueDateSet || input.DueDate == nil || !input.DueDate.Equal(want) {
				t.Fatalf("due date not parsed: %+v", input)
			}
			return &domain.Task{ID: taskID, OwnerID: ownerID, DueDate: input.DueDate}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPut, "/api/tasks/task_1", `{"dueDate":"2026-09-15T12:30:00Z"}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_EmptyTitle(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if input.Title == nil || *input.Title != "" {
				t.Fatalf("empty title not forwarded: %+v", input)
			}
			return nil, domain.ErrTitleRequired
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPut, "/api/tasks/task_1", `{"title":""}`)
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Title is required" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

// A task owned by someone else must produce exactly the same response as a
// missing task.
func TestTaskHandler_Update_ForeignOwner(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodPut, "/api/tasks/task_9", `{"title":"hijack"}`)
	c.SetParamNames("id")
	c.SetParamValues("task_9")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Task not found" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			if ownerID != "user_1" || taskID != "task_1" {
				t.Fatalf("unexpected args: %s %s", ownerID, taskID)
			}
			return nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodDelete, "/api/tasks/task_1", "")
	c.SetParamNames("id")
	c.SetParamValues("task_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			return domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(t, e, http.MethodDelete, "/api/tasks/task_9", "")
	c.SetParamNames("id")
	c.SetParamValues("task_9")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
