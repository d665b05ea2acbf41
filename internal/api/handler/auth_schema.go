package handler

import "github.com/powerme/portal-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

// tokenResponse is returned by register and login. The user projection relies
// on domain.User's JSON tags to keep credential fields out of the payload.
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// forgotPasswordResponse carries the reset token in-band. Not production
// safe: the token proves control of the email address, so handing it to
// whoever asked defeats the purpose. Kept for parity with the portal's
// current contract until a mail channel ships.
type forgotPasswordResponse struct {
	Message        string `json:"message"`
	ResetToken     string `json:"reset_token,omitempty"`
	ExpiresInHours int    `json:"expires_in_hours,omitempty"`
}
