// Package repository provides data access layer for the account module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/account/model"
)

// Repository defines the interface for account data access operations.
type Repository interface {
	// List returns all accounts.
	List(ctx context.Context) ([]model.Account, error)

	// GetByUserName finds an account by username.
	GetByUserName(ctx context.Context, userName string) (*model.Account, error)

	// Create persists a new account. The accounts table carries a unique
	// index on user_name, so concurrent signups with the same username
	// cannot both succeed; the losing insert surfaces ErrUsernameTaken.
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new account repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all accounts.
func (r *repository) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accounts).Error

	if err != nil {
		r.logger.Errorw("List accounts database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	if accounts == nil {
		accounts = []model.Account{}
	}

	return accounts, nil
}

// GetByUserName finds an account by username.
func (r *repository) GetByUserName(ctx context.Context, userName string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAccountNotFound
		}
		r.logger.Errorw("GetByUserName database error", "user_name", userName, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &account, nil
}

// Create persists a new account.
func (r *repository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	err := r.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrUsernameTaken
		}
		r.logger.Errorw("Create account database error", "user_name", account.UserName, "error", err)
		return nil, model.ErrStoreFailure
	}

	return account, nil
}

// isDuplicateError checks whether the error is a unique constraint
// violation, covering both the PostgreSQL and SQLite phrasings.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
