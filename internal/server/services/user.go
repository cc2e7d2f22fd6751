// Package services contains server-side business logic. This file implements
// UserService, the credential issuer: it registers accounts and verifies
// login attempts, minting a session token on success.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvelasco/recetario/internal/common"
	"github.com/dvelasco/recetario/internal/server/auth"
	"github.com/dvelasco/recetario/internal/server/config"
	"github.com/dvelasco/recetario/internal/server/models"
	"github.com/dvelasco/recetario/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create accounts (password stored as a bcrypt hash)
// - Login: verify credentials and mint a session token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		codec:       auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a new account. The returned user carries only the public
// identity fields; the stored hash never leaves this layer. A taken email
// yields common.ErrDuplicate.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the email/password pair and returns a signed session token
// together with the public identity. An unknown email yields
// common.ErrNotFound; a wrong password common.ErrInvalidCredentials. The two
// stay distinct all the way to the transport layer, matching the system's
// observable behavior.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrNotFound
		}
		return "", nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error checking password: %w", err)
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("error issuing token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}
