package middleware

import (
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/response"
	"Hustings/internal/service"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HookSecretMiddleware 校验 CMS 回调携带的共享密钥，未配置密钥时拒绝所有回调
func HookSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(consts.HookSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			response.Fail(c, http.StatusUnauthorized, service.ErrHookSecret.Error(), "")
			c.Abort()
			return
		}
		c.Next()
	}
}
