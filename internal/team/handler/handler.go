// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamforge/teamforge/internal/middleware"
	teamModel "github.com/teamforge/teamforge/internal/team/model"
	"github.com/teamforge/teamforge/internal/team/service"
	teamparamModel "github.com/teamforge/teamforge/internal/teamparam/model"
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

// CreateTeam handles POST /team/create request.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	resp, err := h.service.CreateTeam(c.Request.Context(), username, &req)
	if err != nil {
		h.writeTeamError(c, err, "error creating team")
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// ListTeams handles GET /team/list request.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListIncompleteTeams handles GET /team/incomplete request.
func (h *Handler) ListIncompleteTeams(c *gin.Context) {
	teamParamID := c.Query("team_param_id")
	if teamParamID == "" {
		errorResponse(c, "INVALID_REQUEST", "team_param_id parameter is required", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	resp, err := h.service.ListIncompleteTeams(c.Request.Context(), username, teamParamID)
	if err != nil {
		h.writeTeamError(c, err, "error listing incomplete teams")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLiaisonTeams handles GET /team/liaison request.
func (h *Handler) ListLiaisonTeams(c *gin.Context) {
	username := middleware.Username(c)
	resp, err := h.service.ListLiaisonTeams(c.Request.Context(), username)
	if err != nil {
		h.writeTeamError(c, err, "error listing liaison teams")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestJoin handles POST /team/join request.
func (h *Handler) RequestJoin(c *gin.Context) {
	var req teamModel.JoinTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	resp, err := h.service.RequestJoin(c.Request.Context(), username, &req)
	if err != nil {
		h.writeTeamError(c, err, "error requesting to join teams")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ViewRequests handles GET /team/requests request.
func (h *Handler) ViewRequests(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		errorResponse(c, "INVALID_REQUEST", "team_id parameter is required", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	resp, err := h.service.ViewRequests(c.Request.Context(), username, teamID)
	if err != nil {
		h.writeTeamError(c, err, "error viewing join requests")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptMembers handles POST /team/accept request.
func (h *Handler) AcceptMembers(c *gin.Context) {
	var req teamModel.AcceptMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "all fields must be provided", http.StatusBadRequest)
		return
	}

	username := middleware.Username(c)
	resp, err := h.service.AcceptMembers(c.Request.Context(), username, &req)
	if err != nil {
		h.writeTeamError(c, err, "error accepting members")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"team": resp,
	})
}

// writeTeamError maps domain errors to the HTTP error envelope.
func (h *Handler) writeTeamError(c *gin.Context, err error, logMessage string) {
	var (
		capacityErr      *teamModel.CapacityError
		unknownMemberErr *teamModel.UnknownMemberError
		alreadyMemberErr *teamModel.AlreadyMemberError
		alreadyTeamedErr *teamModel.AlreadyTeamedError
	)

	switch {
	case errors.Is(err, teamModel.ErrNotStudent):
		errorResponse(c, "UNAUTHORIZED", "you do not have permission to perform this operation", http.StatusUnauthorized)
	case errors.Is(err, teamModel.ErrNotLiaison):
		errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, teamModel.ErrTeamNotFound),
		errors.Is(err, teamparamModel.ErrTeamParamNotFound):
		errorResponse(c, "NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, teamModel.ErrEmptyTeamName),
		errors.Is(err, teamModel.ErrEmptyUsernames),
		errors.Is(err, teamModel.ErrEmptyTeamIDs):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamExists):
		errorResponse(c, "TEAM_EXISTS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamComplete):
		errorResponse(c, "CAPACITY_VIOLATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrAlreadyRequested):
		errorResponse(c, "ALREADY_REQUESTED", err.Error(), http.StatusBadRequest)
	case errors.As(err, &capacityErr):
		errorResponse(c, "CAPACITY_VIOLATION", err.Error(), http.StatusBadRequest)
	case errors.As(err, &unknownMemberErr):
		errorResponse(c, "UNKNOWN_MEMBER", err.Error(), http.StatusBadRequest)
	case errors.As(err, &alreadyMemberErr):
		errorResponse(c, "ALREADY_MEMBER", err.Error(), http.StatusBadRequest)
	case errors.As(err, &alreadyTeamedErr):
		errorResponse(c, "ALREADY_TEAMED", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw(logMessage, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
