package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/core/domain"
)

func ownershipContext(e *echo.Echo, callerID, pathCustomerID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customer_id")
	c.SetParamValues(pathCustomerID)
	if callerID != "" {
		c.Set(UserKey, &domain.User{ID: callerID, Role: domain.RoleCustomer})
	}
	return c, rec
}

func TestOwnership_Allows(t *testing.T) {
	e := echo.New()
	c, rec := ownershipContext(e, "cust-1", "cust-1")

	called := false
	mw := Ownership("customer_id")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOwnership_ForbidsOtherCustomer(t *testing.T) {
	e := echo.New()
	c, rec := ownershipContext(e, "cust-1", "cust-2")

	mw := Ownership("customer_id")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestOwnership_ForbidsWithoutAuthenticatedUser(t *testing.T) {
	e := echo.New()
	c, rec := ownershipContext(e, "", "cust-1")

	mw := Ownership("customer_id")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
