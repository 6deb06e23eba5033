// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docshelf/internal/team/model"
	"docshelf/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /teams request.
// @Summary List all teams
// @Tags Teams
// @Produce json
// @Success 200 {array} model.Team
// @Failure 502 {object} ErrorResponse
// @Router /teams [get].
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// Get handles GET /teams/:id request.
// @Summary Get a team by id
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams/{id} [get].
func (h *Handler) Get(c *gin.Context) {
	team, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Create handles POST /teams request.
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Team"
// @Success 201 {object} model.Team
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams [post].
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error creating team", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// Update handles PUT /teams/:id request.
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body model.UpdateTeamRequest true "Partial team"
// @Success 200 {object} model.Team
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams/{id} [put].
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id request.
// @Summary Delete a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} model.Team "Deleted document"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams/{id} [delete].
func (h *Handler) Delete(c *gin.Context) {
	team, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AssignPlayer handles POST /teams/:id/players request.
// @Summary Append a player to a team's roster
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body model.AssignPlayerRequest true "Player"
// @Success 201 {object} model.Team "Updated team document"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams/{id}/players [post].
func (h *Handler) AssignPlayer(c *gin.Context) {
	var req model.AssignPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.AssignPlayer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListPlayers handles GET /teams/:id/players request.
// @Summary List a team's players
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} model.Player
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /teams/{id}/players [get].
func (h *Handler) ListPlayers(c *gin.Context) {
	players, err := h.service.ListPlayers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// respondError maps service errors to the uniform status convention.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, model.ErrInvalidTeamID):
		errorResponse(c, "INVALID_REQUEST", "team id is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrStoreFailure):
		h.logger.Errorw("team store failure", "error", err)
		storeErrorResponse(c)
	default:
		h.logger.Errorw("unexpected team error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
