package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/api/middleware"
	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, role string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	forgotFn   func(ctx context.Context, email string) (ports.ResetRequest, error)
	resetFn    func(ctx context.Context, token, newPassword string) error
	changeFn   func(ctx context.Context, user *domain.User, current, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	return s.registerFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) (ports.ResetRequest, error) {
	return s.forgotFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetFn(ctx, token, newPassword)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, user *domain.User, current, newPassword string) error {
	return s.changeFn(ctx, user, current, newPassword)
}

func (s *stubAuthService) Resolve(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password, role string) (string, *domain.User, error) {
			if email != "a@example.com" || password != "password123" || role != "customer" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return "token123", &domain.User{ID: "user-1", Email: email, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register", `{"email":"a@example.com","password":"password123","role":"customer"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "a@example.com" || user["role"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register", `{"email":"a@example.com","password":"password123"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already registered") {
		t.Fatalf("expected duplicate-email message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register", `{"email":"a@example.com","password":"short"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@example.com" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "user-1", Email: email, Role: "customer"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["access_token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/login", `{"email":"a@example.com","password":"wrongpass"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "incorrect email or password") {
		t.Fatalf("expected generic credentials message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		forgotFn: func(context.Context, string) (ports.ResetRequest, error) {
			return ports.ResetRequest{ExpiresHours: 24}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/forgot-password", `{"email":"ghost@example.com"}`)
	if err := handler.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, present := resp["reset_token"]; present {
		t.Fatalf("reset_token must not be present for unknown email")
	}
	if resp["message"] == "" {
		t.Fatalf("expected generic message")
	}
}

func TestAuthHandler_ForgotPassword_KnownEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		forgotFn: func(context.Context, string) (ports.ResetRequest, error) {
			return ports.ResetRequest{Token: "opaque-reset-token", ExpiresHours: 24}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/forgot-password", `{"email":"a@example.com"}`)
	if err := handler.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["reset_token"] != "opaque-reset-token" {
		t.Fatalf("expected reset token in response, got %+v", resp)
	}
	if resp["expires_in_hours"] != float64(24) {
		t.Fatalf("expected 24h expiry, got %v", resp["expires_in_hours"])
	}
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		resetFn: func(context.Context, string, string) error {
			return domain.ErrInvalidResetToken
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/reset-password", `{"token":"expired","new_password":"newpassword456"}`)
	_ = handler.ResetPassword(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid or expired") {
		t.Fatalf("expected invalid-token message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		changeFn: func(context.Context, *domain.User, string, string) error {
			return domain.ErrWrongPassword
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/change-password", `{"current_password":"wrong","new_password":"newpassword456"}`)
	c.Set(middleware.UserKey, &domain.User{ID: "user-1", Email: "a@example.com"})
	_ = handler.ChangePassword(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "incorrect current password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserKey, &domain.User{ID: "user-1", Email: "a@example.com", Role: "customer", PasswordHash: "secret-hash"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "user-1" || resp["email"] != "a@example.com" || resp["role"] != "customer" {
		t.Fatalf("unexpected projection: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_WithoutAuth(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
