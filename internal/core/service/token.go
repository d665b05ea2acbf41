package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const resetTokenBytes = 32

// tokenIssuer signs and verifies HS256 access tokens for a single secret.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) tokenIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return tokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs the given claims with an exp of now+ttl added in.
func (t tokenIssuer) Issue(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(t.ttl).Unix()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify returns the claims when the signature checks out and the token has
// not expired. All failure modes collapse to a single error so callers cannot
// tell a forged token from a stale one.
func (t tokenIssuer) Verify(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("verify token: %w", jwt.ErrTokenUnverifiable)
	}
	return claims, nil
}

// GenerateResetToken returns a URL-safe opaque token with 256 bits of entropy.
// Reset tokens are not signed; they expire by the timestamp stored next to
// them in the user row.
func GenerateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
