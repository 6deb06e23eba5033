// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/team/model"
	"docshelf/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// List returns all teams.
	List(ctx context.Context) ([]model.Team, error)

	// Get returns a team by id.
	Get(ctx context.Context, id string) (*model.Team, error)

	// Create creates a new team with its player roster.
	Create(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error)

	// Update applies a partial update to an existing team.
	Update(ctx context.Context, id string, req *model.UpdateTeamRequest) (*model.Team, error)

	// Delete removes a team by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Team, error)

	// AssignPlayer appends a player to the team's roster, preserving
	// the order of existing players.
	AssignPlayer(ctx context.Context, id string, req *model.AssignPlayerRequest) (*model.Team, error)

	// ListPlayers returns the player roster of a team.
	ListPlayers(ctx context.Context, id string) ([]model.Player, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all teams.
func (s *service) List(ctx context.Context) ([]model.Team, error) {
	return s.repo.List(ctx)
}

// Get returns a team by id.
func (s *service) Get(ctx context.Context, id string) (*model.Team, error) {
	if id == "" {
		return nil, model.ErrInvalidTeamID
	}
	return s.repo.GetByID(ctx, id)
}

// Create creates a new team with its player roster.
func (s *service) Create(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error) {
	team := &model.Team{
		Name:    req.Name,
		Mascot:  req.Mascot,
		Players: req.Players,
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "id", created.ID, "name", created.Name)
	return created, nil
}

// Update applies a partial update to an existing team.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateTeamRequest) (*model.Team, error) {
	if id == "" {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Mascot != nil {
		team.Mascot = *req.Mascot
	}
	if req.Players != nil {
		team.Players = *req.Players
	}

	updated, err := s.repo.Update(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team updated", "id", id)
	return updated, nil
}

// Delete removes a team by id and returns the deleted document.
func (s *service) Delete(ctx context.Context, id string) (*model.Team, error) {
	if id == "" {
		return nil, model.ErrInvalidTeamID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team deleted", "id", id)
	return deleted, nil
}

// AssignPlayer appends a player to the team's roster.
func (s *service) AssignPlayer(ctx context.Context, id string, req *model.AssignPlayerRequest) (*model.Team, error) {
	if id == "" {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Players = append(team.Players, model.Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Salary:    req.Salary,
	})

	updated, err := s.repo.Update(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player assigned",
		"team_id", id,
		"player_count", len(updated.Players),
	)
	return updated, nil
}

// ListPlayers returns the player roster of a team.
func (s *service) ListPlayers(ctx context.Context, id string) ([]model.Player, error) {
	if id == "" {
		return nil, model.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if team.Players == nil {
		return []model.Player{}, nil
	}
	return team.Players, nil
}
