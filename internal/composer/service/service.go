// Package service provides business logic layer for the composer module.
package service

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/composer/model"
	"docshelf/internal/composer/repository"
)

// Service defines the interface for composer business logic operations.
type Service interface {
	// List returns all composers.
	List(ctx context.Context) ([]model.Composer, error)

	// Get returns a composer by id.
	Get(ctx context.Context, id string) (*model.Composer, error)

	// Create creates a new composer.
	Create(ctx context.Context, req *model.CreateComposerRequest) (*model.Composer, error)

	// Update applies a partial update to an existing composer.
	Update(ctx context.Context, id string, req *model.UpdateComposerRequest) (*model.Composer, error)

	// Delete removes a composer by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Composer, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new composer service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all composers.
func (s *service) List(ctx context.Context) ([]model.Composer, error) {
	return s.repo.List(ctx)
}

// Get returns a composer by id.
func (s *service) Get(ctx context.Context, id string) (*model.Composer, error) {
	if id == "" {
		return nil, model.ErrInvalidComposerID
	}
	return s.repo.GetByID(ctx, id)
}

// Create creates a new composer.
func (s *service) Create(ctx context.Context, req *model.CreateComposerRequest) (*model.Composer, error) {
	composer := &model.Composer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	created, err := s.repo.Create(ctx, composer)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("composer created", "id", created.ID)
	return created, nil
}

// Update applies a partial update to an existing composer.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateComposerRequest) (*model.Composer, error) {
	if id == "" {
		return nil, model.ErrInvalidComposerID
	}

	composer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		composer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		composer.LastName = *req.LastName
	}

	updated, err := s.repo.Update(ctx, composer)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("composer updated", "id", id)
	return updated, nil
}

// Delete removes a composer by id and returns the deleted document.
func (s *service) Delete(ctx context.Context, id string) (*model.Composer, error) {
	if id == "" {
		return nil, model.ErrInvalidComposerID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("composer deleted", "id", id)
	return deleted, nil
}
