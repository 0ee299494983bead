package middleware

import (
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/response"
	"Hustings/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly 要求 token 带有 admin_access，需放在 AuthMiddleware 之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(consts.CtxAdminAccess) {
			response.Fail(c, http.StatusForbidden, service.ForbiddenError.Error(), "需要 Directus 管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CheckRoles 检查当前用户的 Directus 角色是否在允许列表中
func CheckRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(consts.CtxRole)
		for _, allowed := range allowedRoles {
			if role != "" && role == allowed {
				c.Next()
				return
			}
		}
		response.Fail(c, http.StatusForbidden, service.ForbiddenError.Error(), "权限不足：无权访问该资源")
		c.Abort()
	}
}
