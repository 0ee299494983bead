package api

import (
	"Hustings/internal/api/config"
	"Hustings/internal/api/middleware"
	"Hustings/internal/pkg/logger"
	"Hustings/internal/pkg/metrics"
	"Hustings/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const metricsPath = "/metrics"

func SetupRouter(group *HandlersGroup, cfg *config.Config, m *metrics.Manager) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(cfg.Server.TrustedProxies)

	// TraceId & Metrics & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.AuditMiddleware(metricsPath))
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, cfg.Logstash.Index)

	r.GET(metricsPath, gin.WrapH(m.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.SuccessEnvelope(c, "pong")
		})

		candidateGroup := apiGroup.Group("/candidates")
		{
			candidateGroup.GET("/top", group.CandidateHandler.GetTopCandidates)
			candidateGroup.GET("/panel", group.CandidateHandler.GetPanel)
		}

		hookGroup := apiGroup.Group("/hooks")
		hookGroup.Use(middleware.HookSecretMiddleware(cfg.Webhook.Secret))
		{
			hookGroup.POST("/engagement", group.HookHandler.EngagementChanged)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(cfg.Auth), middleware.AdminOnly())
		{
			adminGroup.GET("/engagement", group.AdminHandler.GetEngagement)
			adminGroup.POST("/engagement/refresh", group.AdminHandler.RefreshEngagement)
		}
	}

	return r
}
