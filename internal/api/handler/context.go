package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-tracker/internal/core/auth"
)

// currentUser extracts the identity injected by the Session middleware.
// A handler reached without one answers 401.
func currentUser(c echo.Context) (*auth.Identity, error) {
	identity, _ := c.Get("user").(*auth.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return identity, nil
}
