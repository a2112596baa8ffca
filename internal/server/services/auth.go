// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, login, logout, and session checks on top
// of the users repository and the session manager.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notekeeper/internal/server/session"
)

// AuthService provides authentication-related operations:
//   - Signup: validate credentials, create the user, open a session
//   - Login: verify the password against the stored hash, open a session
//   - Logout: destroy the session
//   - CheckSession: resolve a token back to its user
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sessions    session.Manager
	bcryptCost  int
}

// NewAuthService constructs an AuthService using repositories, the session
// manager, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, sessions session.Manager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		sessions:    sessions,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Signup creates a new user with a bcrypt-hashed password and opens a
// session for it. A duplicate username surfaces as common.ErrorConflict;
// the insert runs in a transaction so nothing is persisted on conflict.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*models.User, string, error) {
	if err := models.ValidateCredentials(username, password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		var createErr error
		user, createErr = repo.Create(ctx, &models.User{Username: username}, string(hash))
		return createErr
	}); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, "", common.ErrorConflict
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the raw password against the stored bcrypt hash and, on
// success, opens a session. A missing user and a wrong password are
// indistinguishable to the caller: both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, hash, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Logout destroys the session behind the token. A token that resolves to no
// session yields common.ErrorUnauthorized.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Get(ctx, token); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// CheckSession resolves a session token to its user. Both a dead token and
// a session pointing at a user that no longer exists yield
// common.ErrorUnauthorized.
func (s *AuthService) CheckSession(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
