// Package auth wires the auth module routes.
package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamforge/teamforge/internal/auth/handler"
	"github.com/teamforge/teamforge/internal/auth/service"
	appConfig "github.com/teamforge/teamforge/internal/config"
	userRepository "github.com/teamforge/teamforge/internal/user/repository"
)

// RegisterRoutes registers auth module routes. These are the only routes
// reachable without a bearer token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) {
	users := userRepository.New(db)
	svc := service.New(users, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}
