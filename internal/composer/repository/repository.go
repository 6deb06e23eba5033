// Package repository provides data access layer for the composer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/composer/model"
)

// Repository defines the interface for composer data access operations.
type Repository interface {
	// List returns all composers.
	List(ctx context.Context) ([]model.Composer, error)

	// GetByID finds a composer by id.
	GetByID(ctx context.Context, id string) (*model.Composer, error)

	// Create persists a new composer and assigns its identifier.
	Create(ctx context.Context, composer *model.Composer) (*model.Composer, error)

	// Update replaces the mutable fields of an existing composer.
	Update(ctx context.Context, composer *model.Composer) (*model.Composer, error)

	// Delete removes a composer by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Composer, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new composer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all composers.
func (r *repository) List(ctx context.Context) ([]model.Composer, error) {
	var composers []model.Composer
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&composers).Error

	if err != nil {
		r.logger.Errorw("List composers database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	if composers == nil {
		composers = []model.Composer{}
	}

	return composers, nil
}

// GetByID finds a composer by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Composer, error) {
	var composer model.Composer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&composer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrComposerNotFound
		}
		r.logger.Errorw("GetByID database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &composer, nil
}

// Create persists a new composer and assigns its identifier.
func (r *repository) Create(ctx context.Context, composer *model.Composer) (*model.Composer, error) {
	err := r.db.WithContext(ctx).Create(composer).Error
	if err != nil {
		r.logger.Errorw("Create composer database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	return composer, nil
}

// Update replaces the mutable fields of an existing composer.
func (r *repository) Update(ctx context.Context, composer *model.Composer) (*model.Composer, error) {
	err := r.db.WithContext(ctx).Save(composer).Error
	if err != nil {
		r.logger.Errorw("Update composer database error", "id", composer.ID, "error", err)
		return nil, model.ErrStoreFailure
	}

	return composer, nil
}

// Delete removes a composer by id and returns the deleted document.
func (r *repository) Delete(ctx context.Context, id string) (*model.Composer, error) {
	composer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Composer{}).Error

	if err != nil {
		r.logger.Errorw("Delete composer database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return composer, nil
}
