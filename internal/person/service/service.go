// Package service provides business logic layer for the person module.
package service

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/person/model"
	"docshelf/internal/person/repository"
)

// Service defines the interface for person business logic operations.
type Service interface {
	// List returns all persons.
	List(ctx context.Context) ([]model.Person, error)

	// Get returns a person by id.
	Get(ctx context.Context, id string) (*model.Person, error)

	// Create creates a new person with its embedded collections.
	Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error)

	// Update applies a partial update to an existing person.
	Update(ctx context.Context, id string, req *model.UpdatePersonRequest) (*model.Person, error)

	// Delete removes a person by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Person, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new person service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all persons.
func (s *service) List(ctx context.Context) ([]model.Person, error) {
	return s.repo.List(ctx)
}

// Get returns a person by id.
func (s *service) Get(ctx context.Context, id string) (*model.Person, error) {
	if id == "" {
		return nil, model.ErrInvalidPersonID
	}
	return s.repo.GetByID(ctx, id)
}

// Create creates a new person with its embedded collections.
func (s *service) Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	person := &model.Person{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  req.BirthDate,
		Roles:      req.Roles,
		Dependents: req.Dependents,
	}

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("person created", "id", created.ID)
	return created, nil
}

// Update applies a partial update to an existing person.
func (s *service) Update(ctx context.Context, id string, req *model.UpdatePersonRequest) (*model.Person, error) {
	if id == "" {
		return nil, model.ErrInvalidPersonID
	}

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		person.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		person.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		person.BirthDate = *req.BirthDate
	}
	if req.Roles != nil {
		person.Roles = *req.Roles
	}
	if req.Dependents != nil {
		person.Dependents = *req.Dependents
	}

	updated, err := s.repo.Update(ctx, person)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("person updated", "id", id)
	return updated, nil
}

// Delete removes a person by id and returns the deleted document.
func (s *service) Delete(ctx context.Context, id string) (*model.Person, error) {
	if id == "" {
		return nil, model.ErrInvalidPersonID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("person deleted", "id", id)
	return deleted, nil
}
