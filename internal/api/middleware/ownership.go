package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/core/domain"
)

// Ownership rejects requests whose path customer id is not the authenticated
// caller's own id. Must run after Auth. Whether the resource exists is never
// checked first, so the response cannot leak other customers' data shape.
func Ownership(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserKey).(*domain.User)
			if err := domain.EnforceOwnership(user, c.Param(param)); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
