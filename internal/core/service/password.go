package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/powerme/portal-api/internal/core/domain"
)

// bcrypt silently truncates beyond 72 bytes, so longer inputs are rejected
// up front rather than hashed with a prefix.
const maxPasswordBytes = 72

const hashCost = 12

// HashPassword produces a self-salting bcrypt digest with the work factor
// baked into the digest string.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored digest. It never
// returns an error: a malformed digest is indistinguishable from a wrong
// password, so a corrupted row cannot be used as an account oracle.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
