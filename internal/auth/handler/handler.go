// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/teamforge/teamforge/internal/auth/model"
	"github.com/teamforge/teamforge/internal/auth/service"
	userModel "github.com/teamforge/teamforge/internal/user/model"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register request.
func (h *Handler) Register(c *gin.Context) {
	var req authModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, userModel.ErrUsernameTaken),
			errors.Is(err, authModel.ErrInvalidUserType),
			errors.Is(err, authModel.ErrInvalidEmail),
			errors.Is(err, authModel.ErrMissingProgram):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error registering user", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "successfully registered"})
}

// Login handles POST /auth/login request.
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrBadCredentials) {
			errorResponse(c, "UNAUTHORIZED", "bad credentials", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in", "username", req.Username, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
