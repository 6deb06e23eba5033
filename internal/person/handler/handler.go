// Package handler provides HTTP handlers for person endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docshelf/internal/person/model"
	"docshelf/internal/person/service"
)

// Handler handles HTTP requests for person endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new person handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /persons request.
// @Summary List all persons
// @Tags Persons
// @Produce json
// @Success 200 {array} model.Person
// @Failure 502 {object} ErrorResponse
// @Router /persons [get].
func (h *Handler) List(c *gin.Context) {
	persons, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing persons", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// Get handles GET /persons/:id request.
// @Summary Get a person by id
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} model.Person
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /persons/{id} [get].
func (h *Handler) Get(c *gin.Context) {
	person, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// Create handles POST /persons request.
// @Summary Create a new person
// @Tags Persons
// @Accept json
// @Produce json
// @Param request body model.CreatePersonRequest true "Person"
// @Success 201 {object} model.Person
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /persons [post].
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error creating person", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, person)
}

// Update handles PUT /persons/:id request.
// @Summary Update a person
// @Tags Persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param request body model.UpdatePersonRequest true "Partial person"
// @Success 200 {object} model.Person
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /persons/{id} [put].
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	person, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// Delete handles DELETE /persons/:id request.
// @Summary Delete a person
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} model.Person "Deleted document"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /persons/{id} [delete].
func (h *Handler) Delete(c *gin.Context) {
	person, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// respondError maps service errors to the uniform status convention.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPersonNotFound):
		notFoundResponse(c, "person not found")
	case errors.Is(err, model.ErrInvalidPersonID):
		errorResponse(c, "INVALID_REQUEST", "person id is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrStoreFailure):
		h.logger.Errorw("person store failure", "error", err)
		storeErrorResponse(c)
	default:
		h.logger.Errorw("unexpected person error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
