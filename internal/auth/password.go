package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash of the password. Used to produce the
// ADMIN_PASSWORD_HASH value for deployments that do not want the plaintext
// pair in the environment.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks a submitted password against the configured
// credential. When a bcrypt hash is configured it takes precedence over the
// plaintext password.
func VerifyPassword(given, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(plain)) == 1
}
