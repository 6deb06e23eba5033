// Package handler provides HTTP handlers for composer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docshelf/internal/composer/model"
	"docshelf/internal/composer/service"
)

// Handler handles HTTP requests for composer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new composer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /composers request.
// @Summary List all composers
// @Tags Composers
// @Produce json
// @Success 200 {array} model.Composer
// @Failure 502 {object} ErrorResponse
// @Router /composers [get].
func (h *Handler) List(c *gin.Context) {
	composers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing composers", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, composers)
}

// Get handles GET /composers/:id request.
// @Summary Get a composer by id
// @Tags Composers
// @Produce json
// @Param id path string true "Composer ID"
// @Success 200 {object} model.Composer
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /composers/{id} [get].
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	composer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "composer not found")
		return
	}

	c.JSON(http.StatusOK, composer)
}

// Create handles POST /composers request.
// @Summary Create a new composer
// @Tags Composers
// @Accept json
// @Produce json
// @Param request body model.CreateComposerRequest true "Composer"
// @Success 201 {object} model.Composer
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /composers [post].
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateComposerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	composer, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error creating composer", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, composer)
}

// Update handles PUT /composers/:id request.
// @Summary Update a composer
// @Tags Composers
// @Accept json
// @Produce json
// @Param id path string true "Composer ID"
// @Param request body model.UpdateComposerRequest true "Partial composer"
// @Success 200 {object} model.Composer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /composers/{id} [put].
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateComposerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	composer, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "composer not found")
		return
	}

	c.JSON(http.StatusOK, composer)
}

// Delete handles DELETE /composers/:id request.
// @Summary Delete a composer
// @Tags Composers
// @Produce json
// @Param id path string true "Composer ID"
// @Success 200 {object} model.Composer "Deleted document"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /composers/{id} [delete].
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	composer, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "composer not found")
		return
	}

	c.JSON(http.StatusOK, composer)
}

// respondError maps service errors to the uniform status convention.
func (h *Handler) respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, model.ErrComposerNotFound):
		notFoundResponse(c, notFoundMsg)
	case errors.Is(err, model.ErrInvalidComposerID):
		errorResponse(c, "INVALID_REQUEST", "composer id is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrStoreFailure):
		h.logger.Errorw("composer store failure", "error", err)
		storeErrorResponse(c)
	default:
		h.logger.Errorw("unexpected composer error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
