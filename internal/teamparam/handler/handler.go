// Package handler provides HTTP handlers for teamparam endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courseModel "github.com/teamforge/teamforge/internal/course/model"
	"github.com/teamforge/teamforge/internal/middleware"
	teamparamModel "github.com/teamforge/teamforge/internal/teamparam/model"
	"github.com/teamforge/teamforge/internal/teamparam/service"
)

// Handler handles HTTP requests for teamparam endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new teamparam handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeamParam handles POST /teamParams/create request.
func (h *Handler) CreateTeamParam(c *gin.Context) {
	var req teamparamModel.CreateTeamParamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	param, err := h.service.CreateTeamParam(c.Request.Context(), username, &req)
	if err != nil {
		switch {
		case errors.Is(err, teamparamModel.ErrNotInstructor):
			errorResponse(c, "UNAUTHORIZED", "you do not have permission to create team parameters", http.StatusUnauthorized)
		case errors.Is(err, courseModel.ErrCourseNotFound):
			errorResponse(c, "NOT_FOUND", "the course code with the specified section does not exist", http.StatusNotFound)
		case errors.Is(err, teamparamModel.ErrTeamParamExists):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		case errors.Is(err, teamparamModel.ErrInvalidSizeBounds),
			errors.Is(err, teamparamModel.ErrInvalidDeadline):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error creating team parameters", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team_param": param,
	})
}

// ListOpenTeamParams handles GET /teamParams/open request.
func (h *Handler) ListOpenTeamParams(c *gin.Context) {
	username := middleware.Username(c)
	resp, err := h.service.ListOpenTeamParams(c.Request.Context(), username)
	if err != nil {
		h.logger.Errorw("error listing open team parameters", "username", username, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
