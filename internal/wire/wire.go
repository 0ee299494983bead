package wire

import (
	"Hustings/internal/api"
	"Hustings/internal/api/config"
	"Hustings/internal/api/handler"
	"Hustings/internal/job"
	"Hustings/internal/pkg/cron"
	"Hustings/internal/pkg/directus"
	"Hustings/internal/pkg/metrics"
	"Hustings/internal/pkg/redis"
	"Hustings/internal/repository"
	"Hustings/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
	Metrics *metrics.Manager
}

// BuildApplication cache 为 nil 时不启用缓存，预热任务也不注册
func BuildApplication(cfg *config.Config, cache *redis.Cache, m *metrics.Manager) (*ApplicationContainer, error) {
	cmsClient := directus.NewClient(cfg.Directus, m)
	candidateRepo := repository.NewCandidateRepo(cmsClient, cfg.Directus)

	var (
		cacher service.Cacher
		locker job.Locker
	)
	if cache != nil {
		cacher = cache
		locker = cache
	}

	engagementService := service.NewEngagementService(candidateRepo, cacher, cfg.Cache, m)

	handlers := &api.HandlersGroup{
		CandidateHandler: handler.NewCandidateHandler(engagementService),
		AdminHandler:     handler.NewAdminHandler(engagementService),
		HookHandler:      handler.NewHookHandler(engagementService),
	}

	router := api.SetupRouter(handlers, cfg, m)

	warmSchedule := ""
	if cacher != nil && cfg.CacheEnabled() {
		warmSchedule = cfg.Cron.EngagementWarm
	}
	cronMgr := cron.NewCronManager(job.NewEngagementWarmJob(engagementService, locker), warmSchedule)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
		Metrics: m,
	}, nil
}
