package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 从 Authorization: Bearer 或 ?token= 中解析 JWT
func AuthMiddleware(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err), zap.String("path", c.FullPath()))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		// 管理员拥有所有教师权限
		if user.Role != model.Admin && !slices.Contains(roles, user.Role) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
