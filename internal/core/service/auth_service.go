package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/powerme/portal-api/internal/api/metrics"
	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

// AuthService implements registration, login, the password-reset lifecycle and
// bearer-token resolution.
type AuthService struct {
	repo     ports.UserRepository
	notifier ports.ResetNotifier
	issuer   tokenIssuer
	resetTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, notifier ports.ResetNotifier, jwtSecret string, accessTTL, resetTTL time.Duration, logger zerolog.Logger) *AuthService {
	if resetTTL <= 0 {
		resetTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:     repo,
		notifier: notifier,
		issuer:   newTokenIssuer(jwtSecret, accessTTL),
		resetTTL: resetTTL,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	if role == "" {
		role = domain.RoleCustomer
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueFor(ctx, created)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Identical outcome to a wrong password: no account enumeration.
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueFor(ctx, user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (ports.ResetRequest, error) {
	expiresHours := int(s.resetTTL.Hours())

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Answer as if a token was issued so the response cannot be used
			// to probe which emails are registered.
			return ports.ResetRequest{ExpiresHours: expiresHours}, nil
		}
		return ports.ResetRequest{}, err
	}

	token, err := GenerateResetToken()
	if err != nil {
		return ports.ResetRequest{}, err
	}

	expiry := time.Now().UTC().Add(s.resetTTL)
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry
	if err := s.repo.Update(ctx, user); err != nil {
		return ports.ResetRequest{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.DeliverResetToken(ctx, user.Email, token, expiry); err != nil {
			// Delivery is best effort; the token is still returned in-band.
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("reset token delivery failed")
		}
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	return ports.ResetRequest{Token: token, ExpiresHours: expiresHours}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Single use: consuming the token also drops the last issued access
	// token, forcing other sessions to authenticate again.
	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	user.LastIssuedToken = ""
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.LastIssuedToken = ""
	return s.repo.Update(ctx, user)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, sub)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUnauthenticated
	}

	metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// issueFor signs an access token for the user and records it as the latest
// issued one. A single mutable field per user: latest token wins.
func (s *AuthService) issueFor(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.issuer.Issue(jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
	if err != nil {
		return "", err
	}

	user.LastIssuedToken = token
	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return token, nil
}
