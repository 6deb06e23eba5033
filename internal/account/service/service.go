// Package service provides the account directory: signup and login
// decision logic on top of the document store and the password hasher.
package service

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/account/model"
	"docshelf/internal/account/repository"
)

// Service defines the interface for account business logic operations.
type Service interface {
	// Signup registers a new account with a freshly salted password hash.
	// A duplicate username fails with ErrUsernameTaken.
	Signup(ctx context.Context, req *model.SignupRequest) (*model.Account, error)

	// Login verifies credentials. An unknown username and a wrong password
	// both fail with ErrInvalidCredentials; callers cannot tell which.
	Login(ctx context.Context, req *model.LoginRequest) error

	// List returns all accounts (password hashes excluded by the model's
	// serialization rules).
	List(ctx context.Context) ([]model.Account, error)
}

type service struct {
	repo   repository.Repository
	hasher Hasher
	logger *zap.SugaredLogger
}

// New creates a new account service instance.
func New(repo repository.Repository, hasher Hasher, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, hasher: hasher, logger: logger}
}

// Signup registers a new account. Uniqueness is enforced by the store's
// unique index rather than a check-then-write, so two concurrent signups
// with the same username cannot both succeed.
func (s *service) Signup(ctx context.Context, req *model.SignupRequest) (*model.Account, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Errorw("password hashing failed", "error", err)
		return nil, err
	}

	account := &model.Account{
		UserName:       req.UserName,
		PasswordHash:   hash,
		EmailAddresses: req.EmailAddress,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("account registered", "user_name", created.UserName)
	return created, nil
}

// Login verifies credentials against the stored hash.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) error {
	account, err := s.repo.GetByUserName(ctx, req.UserName)
	if err != nil {
		if err == model.ErrAccountNotFound {
			return model.ErrInvalidCredentials
		}
		return err
	}

	if !s.hasher.Verify(account.PasswordHash, req.Password) {
		return model.ErrInvalidCredentials
	}

	s.logger.Infow("login succeeded", "user_name", req.UserName)
	return nil
}

// List returns all accounts.
func (s *service) List(ctx context.Context) ([]model.Account, error) {
	return s.repo.List(ctx)
}
