package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-tracker/internal/core/auth"
)

// Session resolves the caller's identity from the session cookie and injects
// it into the request context under the "user" key. Requests without a valid
// session are rejected with 401 before reaching the handler; the message is
// the same whether the cookie is missing, tampered or expired.
func Session(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolver.Resolve(c.Request().Context(), c.Request())
			if err != nil {
				return err
			}
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			c.Set("user", identity)

			return next(c)
		}
	}
}
