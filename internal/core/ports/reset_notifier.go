package ports

import (
	"context"
	"time"
)

// ResetNotifier delivers a password-reset token to the account owner through
// an out-of-band channel. The auth flow only generates and persists the token;
// delivery failures must not fail the request.
type ResetNotifier interface {
	DeliverResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
}
