// Package services contains the server-side business logic: registration and
// login, workspace limits, note composition and block ordering invariants.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/common"
	"github.com/remindhq/remind/internal/server/auth"
	"github.com/remindhq/remind/internal/server/config"
	"github.com/remindhq/remind/internal/server/dto"
	"github.com/remindhq/remind/internal/server/models"
	"github.com/remindhq/remind/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Register: create users with hashed passwords
// - LoginByUsername / LoginByEmail: verify credentials and mint a token
// - FindOne / FindOneByUsername: lookups for the auth boundary
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user. The username and the email must both be free;
// the password is stored only as an argon2id digest.
func (s *UserService) Register(ctx context.Context, data dto.UserCreate) (*dto.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindOneByUsername(ctx, data.Username); err == nil {
		return nil, common.ErrUsernameOccupied
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error searching user by username: %w", err)
	}

	if _, err := repo.FindOneByEmail(ctx, data.Email); err == nil {
		return nil, common.ErrEmailExists
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error searching user by email: %w", err)
	}

	digest, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: data.Username,
		Email:    data.Email,
		Password: digest,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	// return the stored representation
	return s.FindOne(ctx, user.ID)
}

// FindOne returns the user with the given id.
func (s *UserService) FindOne(ctx context.Context, id uuid.UUID) (*dto.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

// FindOneByUsername returns the user with the given username.
func (s *UserService) FindOneByUsername(ctx context.Context, username string) (*dto.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindOneByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return dto.UserFromModel(user), nil
}

// LoginByUsername verifies the credentials and issues a token bound to the
// username. A missing user and a wrong password yield the same error so the
// caller cannot tell which check failed.
func (s *UserService) LoginByUsername(ctx context.Context, data dto.UserLoginUsername) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindOneByUsername(ctx, data.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrWrongCredentials
		}
		return "", err
	}

	return s.login(user, data.Password)
}

// LoginByEmail is the same contract keyed by email; the issued token's
// subject is still the username.
func (s *UserService) LoginByEmail(ctx context.Context, data dto.UserLoginEmail) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindOneByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrWrongCredentials
		}
		return "", err
	}

	return s.login(user, data.Password)
}

func (s *UserService) login(user *models.User, password string) (string, error) {
	if !auth.VerifyPassword(password, user.Password) {
		return "", common.ErrWrongCredentials
	}
	return auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidityDuration)
}
