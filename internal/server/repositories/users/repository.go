// Package users is the credential store: account rows with their password
// hashes, looked up at login and created at registration.
package users

import (
	"context"

	"github.com/dvelasco/recetario/internal/server/models"
)

type Repository interface {
	// Create persists a new user. A duplicate email yields
	// common.ErrDuplicate.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
