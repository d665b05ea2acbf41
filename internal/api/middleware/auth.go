package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/core/ports"
)

// UserKey is the echo.Context key under which Auth stores the resolved user.
const UserKey = "auth_user"

// Auth resolves the bearer token to a full user record and injects it into
// the context. Any failure (missing header, malformed header, bad or expired
// token, or a token naming a deleted account) yields 403 with the same message.
// 403 (not 401) preserves the portal's long-observed contract.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "not authenticated")
			}

			user, err := auth.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "not authenticated")
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}
