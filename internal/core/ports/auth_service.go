package ports

import (
	"context"

	"github.com/powerme/portal-api/internal/core/domain"
)

// ResetRequest is the outcome of a forgot-password call. Token is empty when
// the email is unknown so handlers can answer without revealing existence.
type ResetRequest struct {
	Token        string
	ExpiresHours int
}

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ForgotPassword(ctx context.Context, email string) (ResetRequest, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error
	// Resolve decodes a bearer token and loads the account it names. Any
	// failure (bad signature, expired, unknown subject) collapses to
	// domain.ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
