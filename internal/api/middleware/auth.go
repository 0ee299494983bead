package middleware

import (
	"Hustings/internal/api/config"
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/response"
	"Hustings/internal/pkg/security"
	"Hustings/internal/service"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Directus access token 并将用户身份信息注入 Context
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, service.UnauthorizedError.Error(), "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(cfg.JWTSecret, cfg.Issuer, tokenString)
		if err != nil {
			log.InfoContext(c.Request.Context(), "reject token", "err", err)
			response.Fail(c, http.StatusUnauthorized, service.UnauthorizedError.Error(), "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(consts.CtxUserID, claims.UserID)
		c.Set(consts.CtxRole, claims.Role)
		c.Set(consts.CtxAdminAccess, claims.AdminAccess)

		c.Next()
	}
}
