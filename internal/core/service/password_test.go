package service

import (
	"strings"
	"testing"

	"github.com/powerme/portal-api/internal/core/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword("password123", hash) {
		t.Fatalf("hash does not verify against original password")
	}
	if VerifyPassword("password124", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_Exactly72Bytes(t *testing.T) {
	pw := strings.Repeat("a", 72)
	hash, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("72-byte password rejected: %v", err)
	}
	if !VerifyPassword(pw, hash) {
		t.Fatalf("72-byte password does not verify")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("a", 73)); err != domain.ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}

	// Multi-byte runes count in bytes, not characters.
	if _, err := HashPassword(strings.Repeat("é", 40)); err != domain.ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong for 80-byte input, got %v", err)
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	// A corrupted stored hash must behave like a wrong password, never panic
	// or surface an error.
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$12$short"} {
		if VerifyPassword("password123", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}
