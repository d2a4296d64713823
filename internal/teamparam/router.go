// Package teamparam wires the teamparam module routes.
package teamparam

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamforge/teamforge/internal/access"
	courseRepository "github.com/teamforge/teamforge/internal/course/repository"
	"github.com/teamforge/teamforge/internal/teamparam/handler"
	"github.com/teamforge/teamforge/internal/teamparam/repository"
	"github.com/teamforge/teamforge/internal/teamparam/service"
	userRepository "github.com/teamforge/teamforge/internal/user/repository"
)

// RegisterRoutes registers teamparam module routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	courses := courseRepository.New(db)
	users := userRepository.New(db)
	gate := access.New(db)
	svc := service.New(repo, courses, users, gate, logger)
	h := handler.New(svc, logger)

	r.POST("/teamParams/create", h.CreateTeamParam)
	r.GET("/teamParams/open", h.ListOpenTeamParams)
}
