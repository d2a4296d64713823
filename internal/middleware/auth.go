package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	authModel "github.com/teamforge/teamforge/internal/auth/model"
	appConfig "github.com/teamforge/teamforge/internal/config"
)

const (
	usernameKey = "auth.username"
	roleKey     = "auth.role"
)

// Auth returns a middleware that requires a valid bearer token and stores
// the caller identity in the request context.
func Auth(cfg appConfig.AuthConfig, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "a bearer token is required")
			return
		}

		claims := &authModel.Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid || claims.Subject == "" {
			logger.Debugw("rejected bearer token", "error", err)
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(usernameKey, claims.Subject)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// Username returns the authenticated caller's username.
func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}

// Role returns the authenticated caller's role.
func Role(c *gin.Context) authModel.Role {
	if v, ok := c.Get(roleKey); ok {
		if role, ok := v.(authModel.Role); ok {
			return role
		}
	}
	return ""
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
