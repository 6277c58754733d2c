package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
//
// bcrypt embeds a random salt into every hash, so two calls with the same
// input produce different outputs. The default cost is used; raising it is a
// deployment decision, not an API one.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte input
// limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash.
//
// It never panics or returns an error: a malformed hash, like a wrong
// password, simply yields false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
