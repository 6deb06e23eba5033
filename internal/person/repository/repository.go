// Package repository provides data access layer for the person module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/person/model"
)

// Repository defines the interface for person data access operations.
type Repository interface {
	// List returns all persons.
	List(ctx context.Context) ([]model.Person, error)

	// GetByID finds a person by id.
	GetByID(ctx context.Context, id string) (*model.Person, error)

	// Create persists a new person and assigns its identifier.
	Create(ctx context.Context, person *model.Person) (*model.Person, error)

	// Update replaces the mutable fields of an existing person,
	// including its embedded collections.
	Update(ctx context.Context, person *model.Person) (*model.Person, error)

	// Delete removes a person by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Person, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new person repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all persons.
func (r *repository) List(ctx context.Context) ([]model.Person, error) {
	var persons []model.Person
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&persons).Error

	if err != nil {
		r.logger.Errorw("List persons database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	if persons == nil {
		persons = []model.Person{}
	}

	return persons, nil
}

// GetByID finds a person by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&person).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPersonNotFound
		}
		r.logger.Errorw("GetByID database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &person, nil
}

// Create persists a new person and assigns its identifier.
func (r *repository) Create(ctx context.Context, person *model.Person) (*model.Person, error) {
	err := r.db.WithContext(ctx).Create(person).Error
	if err != nil {
		r.logger.Errorw("Create person database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	return person, nil
}

// Update replaces the mutable fields of an existing person.
func (r *repository) Update(ctx context.Context, person *model.Person) (*model.Person, error) {
	err := r.db.WithContext(ctx).Save(person).Error
	if err != nil {
		r.logger.Errorw("Update person database error", "id", person.ID, "error", err)
		return nil, model.ErrStoreFailure
	}

	return person, nil
}

// Delete removes a person by id and returns the deleted document.
func (r *repository) Delete(ctx context.Context, id string) (*model.Person, error) {
	person, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Person{}).Error

	if err != nil {
		r.logger.Errorw("Delete person database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return person, nil
}
