// Package handler provides HTTP handlers for customer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docshelf/internal/customer/model"
	"docshelf/internal/customer/service"
)

// Handler handles HTTP requests for customer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new customer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /customers request.
// @Summary List all customers
// @Tags Customers
// @Produce json
// @Success 200 {array} model.Customer
// @Failure 502 {object} ErrorResponse
// @Router /customers [get].
func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing customers", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Get handles GET /customers/:id request.
// @Summary Get a customer by id
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers/{id} [get].
func (h *Handler) Get(c *gin.Context) {
	customer, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Create handles POST /customers request.
// @Summary Create a new customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.CreateCustomerRequest true "Customer"
// @Success 201 {object} model.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers [post].
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("error creating customer", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /customers/:id request.
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body model.UpdateCustomerRequest true "Partial customer"
// @Success 200 {object} model.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers/{id} [put].
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customers/:id request.
// @Summary Delete a customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.Customer "Deleted document"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers/{id} [delete].
func (h *Handler) Delete(c *gin.Context) {
	customer, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// AddInvoice handles POST /customers/:id/invoices request.
// The path segment carries the customer's username, matching the
// original shopper API addressing convention.
// @Summary Append an invoice to a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param username path string true "Customer username"
// @Param request body model.AddInvoiceRequest true "Invoice"
// @Success 201 {object} model.Customer "Updated customer document"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers/{username}/invoices [post].
func (h *Handler) AddInvoice(c *gin.Context) {
	var req model.AddInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.AddInvoice(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// ListInvoices handles GET /customers/:id/invoices request, where the
// path segment carries the customer's username.
// @Summary List a customer's invoices
// @Tags Customers
// @Produce json
// @Param username path string true "Customer username"
// @Success 200 {array} model.Invoice
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /customers/{username}/invoices [get].
func (h *Handler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// respondError maps service errors to the uniform status convention.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrCustomerNotFound):
		notFoundResponse(c, "customer not found")
	case errors.Is(err, model.ErrInvalidCustomerID):
		errorResponse(c, "INVALID_REQUEST", "customer id is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidUserName):
		errorResponse(c, "INVALID_REQUEST", "username is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrStoreFailure):
		h.logger.Errorw("customer store failure", "error", err)
		storeErrorResponse(c)
	default:
		h.logger.Errorw("unexpected customer error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
