package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dvelasco/recetario/internal/common"
)

// HashPassword generates a bcrypt hash of the given password with the given
// cost. Empty passwords are refused before hashing.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password must not be empty", common.ErrValidation)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(h), nil
}

// CheckPassword validates the given cleartext password against a stored
// bcrypt hash. A mismatch yields common.ErrInvalidCredentials; any other
// failure is returned as-is.
func CheckPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrInvalidCredentials
		}
		return err
	}
	return nil
}
