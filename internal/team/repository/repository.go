// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns all teams.
	List(ctx context.Context) ([]model.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*model.Team, error)

	// Create persists a new team and assigns its identifier.
	Create(ctx context.Context, team *model.Team) (*model.Team, error)

	// Update replaces the mutable fields of an existing team,
	// including its player roster.
	Update(ctx context.Context, team *model.Team) (*model.Team, error)

	// Delete removes a team by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Team, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all teams.
func (r *repository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("List teams database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &team, nil
}

// Create persists a new team and assigns its identifier.
func (r *repository) Create(ctx context.Context, team *model.Team) (*model.Team, error) {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		r.logger.Errorw("Create team database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	return team, nil
}

// Update replaces the mutable fields of an existing team.
func (r *repository) Update(ctx context.Context, team *model.Team) (*model.Team, error) {
	err := r.db.WithContext(ctx).Save(team).Error
	if err != nil {
		r.logger.Errorw("Update team database error", "id", team.ID, "error", err)
		return nil, model.ErrStoreFailure
	}

	return team, nil
}

// Delete removes a team by id and returns the deleted document.
func (r *repository) Delete(ctx context.Context, id string) (*model.Team, error) {
	team, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Team{}).Error

	if err != nil {
		r.logger.Errorw("Delete team database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return team, nil
}
