// Package services contains server-side business logic. This file implements
// UserService, which handles registration and the credential check behind
// login.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/cryptox"
	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server/config"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/repomanager"
)

// UserService provides account operations:
// - Register / RegisterAdmin: create users with a unique email
// - Login: verify credentials
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *cryptox.PasswordHasher
	logger      logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      cryptox.NewPasswordHasher(cfg.PasswordHashMemoryKiB),
		logger:      logger,
	}
}

// Register creates a regular user. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	return s.create(ctx, email, password, false)
}

// RegisterAdmin is Register with is_admin set.
func (s *UserService) RegisterAdmin(ctx context.Context, email, password string) (*models.User, error) {
	return s.create(ctx, email, password, true)
}

func (s *UserService) create(ctx context.Context, email, password string, isAdmin bool) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	user := &models.User{Email: email, PasswordHash: hash, IsAdmin: isAdmin}

	// The count and the insert share one transaction; the unique index on
	// email rejects whichever writer loses a race past the count.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		n, err := repo.CountByEmail(ctx, email)
		if err != nil {
			return err
		}
		if n > 0 {
			return common.ErrorAlreadyExists
		}

		_, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// Login returns the user whose email and password match. An unknown email and
// a wrong password both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerify(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		s.logger.Warn(ctx, "stored password hash unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrorUnauthorized
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// burnVerify runs a verification against a throwaway hash so that a miss on
// email costs about as much as a wrong password.
func (s *UserService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("dilbilim")
		if err == nil {
			s.dummyHash = h
		}
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(s.dummyHash, password)
	}
}
