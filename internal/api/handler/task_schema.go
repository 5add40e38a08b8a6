package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-tracker/internal/core/domain"
	"github.com/taskhub/task-tracker/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type taskResponse struct {
	Task *domain.Task `json:"task"`
}

type listTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// parseUpdateBody decodes a partial-update payload. The raw map preserves the
// distinction between an absent field, an explicit null and a value, which a
// plain struct bind cannot: null clears description and dueDate, absence
// leaves them untouched.
func parseUpdateBody(c echo.Context) (ports.UpdateTaskInput, error) {
	var input ports.UpdateTaskInput

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if raw, ok := body["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		input.Title = &title
	}
	if raw, ok := body["description"]; ok {
		var desc string
		if err := json.Unmarshal(raw, &desc); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		input.Description = &desc
	}
	if raw, ok := body["dueDate"]; ok {
		input.DueDateSet = true
		if string(raw) != "null" {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			if s != "" {
				due, err := parseDueDate(s)
				if err != nil {
					return input, echo.NewHTTPError(http.StatusBadRequest, "Invalid due date")
				}
				input.DueDate = &due
			} else {
				input.DueDate = nil
			}
		}
	}
	if raw, ok := body["completed"]; ok {
		var completed bool
		if err := json.Unmarshal(raw, &completed); err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		input.Completed = &completed
	}

	return input, nil
}

// parseDueDate accepts RFC 3339 timestamps and bare dates, the two shapes the
// browser date picker submits.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
