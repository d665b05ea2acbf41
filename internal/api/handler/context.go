package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/api/middleware"
	"github.com/powerme/portal-api/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. A missing
// user means the route was wired without the middleware; fail closed with the
// same 403 the middleware itself returns.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, "not authenticated")
	}
	return user, nil
}
