// Package notify implements reset-token delivery. The auth flow only knows
// the ResetNotifier port; what sits behind it (a log line today, an email
// gateway later) is wiring.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LogNotifier "delivers" reset tokens by logging them. Stands in for an email
// sender in development; the token itself is never logged, only its presence.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) DeliverResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	n.log.Info().
		Str("email", email).
		Int("token_length", len(token)).
		Time("expires_at", expiresAt).
		Msg("password reset token issued")
	return nil
}
