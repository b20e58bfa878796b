// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login (credential verification
// plus JWT issuance).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/auth"
	"github.com/postline/postline/internal/server/config"
	"github.com/postline/postline/internal/server/models"
	"github.com/postline/postline/internal/server/repositories/repomanager"
)

// UserService provides identity operations:
// - Register: create users with a hashed password
// - Login: verify credentials and mint an access token
// - GetByID: profile lookup
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      auth.Hasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user. The raw password never reaches the repository.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, Password: digest}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password against the stored digest and, on success,
// returns a signed access token. Unknown email and wrong password produce
// the same ErrInvalidCredentials; a password verification runs in both
// cases so the two are also indistinguishable by timing. A failing store
// yields ErrDependencyUnavailable, never ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	digest := auth.DummyDigest
	userExists := false

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrDependencyUnavailable
		}
	} else {
		digest = user.Password
		userExists = true
	}

	valid := s.hasher.Verify(password, digest)
	if !userExists || !valid {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID returns the user's profile or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}
