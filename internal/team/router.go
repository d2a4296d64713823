// Package team wires the team module routes.
package team

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamforge/teamforge/internal/access"
	"github.com/teamforge/teamforge/internal/team/handler"
	"github.com/teamforge/teamforge/internal/team/repository"
	"github.com/teamforge/teamforge/internal/team/service"
	teamparamRepository "github.com/teamforge/teamforge/internal/teamparam/repository"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	params := teamparamRepository.New(db)
	gate := access.New(db)
	svc := service.New(repo, params, gate, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/create", h.CreateTeam)
	r.GET("/team/list", h.ListTeams)
	r.GET("/team/incomplete", h.ListIncompleteTeams)
	r.GET("/team/liaison", h.ListLiaisonTeams)
	r.POST("/team/join", h.RequestJoin)
	r.GET("/team/requests", h.ViewRequests)
	r.POST("/team/accept", h.AcceptMembers)
}
