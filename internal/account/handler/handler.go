// Package handler provides HTTP handlers for signup and login endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docshelf/internal/account/model"
	"docshelf/internal/account/service"
)

// Handler handles HTTP requests for account endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new account handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Signup handles POST /signup request.
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Credentials"
// @Success 201 {object} model.SignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already in use"
// @Failure 502 {object} ErrorResponse
// @Router /signup [post].
func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			errorResponse(c, "USERNAME_TAKEN", "username already in use", http.StatusConflict)
		case errors.Is(err, model.ErrStoreFailure):
			h.logger.Errorw("signup store failure", "error", err)
			storeErrorResponse(c)
		default:
			h.logger.Errorw("unexpected signup error", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.SignupResponse{
		Message: "registered user",
		Account: *account,
	})
}

// Login handles POST /login request. The response body never reveals
// whether the username or the password was wrong.
// @Summary Verify account credentials
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid username and/or password"
// @Failure 502 {object} ErrorResponse
// @Router /login [post].
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			errorResponse(c, "INVALID_CREDENTIALS", "invalid username and/or password", http.StatusUnauthorized)
		case errors.Is(err, model.ErrStoreFailure):
			h.logger.Errorw("login store failure", "error", err)
			storeErrorResponse(c)
		default:
			h.logger.Errorw("unexpected login error", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Message: "user logged in"})
}

// List handles GET /accounts request.
// @Summary List all accounts
// @Tags Accounts
// @Produce json
// @Success 200 {array} model.Account
// @Failure 502 {object} ErrorResponse
// @Router /accounts [get].
func (h *Handler) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing accounts", "error", err)
		storeErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, accounts)
}
