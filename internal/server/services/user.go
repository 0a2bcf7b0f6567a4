// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lgmarques/taskhub/internal/common"
	"github.com/lgmarques/taskhub/internal/dbx"
	"github.com/lgmarques/taskhub/internal/server/auth"
	"github.com/lgmarques/taskhub/internal/server/models"
	"github.com/lgmarques/taskhub/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: filter input, enforce e-mail uniqueness, hash and persist
// - Login: verify credentials and mint a token
// - GetByEmail: resolve a token subject back to an account record
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
}

// NewUserService constructs a UserService using repositories and the shared
// token service.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
	}
}

// Register creates a new user. All three fields pass the safety filter before
// anything reaches the store; an unsafe payload aborts with ErrInvalidInput
// without even checking e-mail existence. A duplicate e-mail yields
// ErrEmailTaken, whether caught by the lookup or by the unique index when two
// registrations race.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	for _, field := range []string{name, email, password} {
		if !auth.IsSafeInput(field) {
			return nil, common.ErrInvalidInput
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return common.ErrorInternal
		}
		if exists {
			return common.ErrEmailTaken
		}

		user, err = repo.Create(ctx, user)
		return err
	}); err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrorInternal) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the e-mail/password pair and, on success, returns a signed
// bearer token. Unknown e-mail and wrong password fail identically with
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetByEmail resolves an account by its e-mail, typically the validated token
// subject.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}
