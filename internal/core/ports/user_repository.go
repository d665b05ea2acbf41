package ports

import (
	"context"

	"github.com/powerme/portal-api/internal/core/domain"
)

// UserRepository defines the persistence contract for portal accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByResetToken matches only when the stored expiry is strictly in the
	// future; an expired token behaves exactly like an unknown one.
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	// Update overwrites the user row and refreshes updated_at.
	Update(ctx context.Context, user *domain.User) error
}
