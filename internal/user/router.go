// Package user wires the user module routes.
package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamforge/teamforge/internal/user/handler"
	"github.com/teamforge/teamforge/internal/user/repository"
	"github.com/teamforge/teamforge/internal/user/service"
)

// RegisterRoutes registers user module routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/students/list", h.ListStudents)
}
