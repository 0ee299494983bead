package job

import (
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/logger"
	"Hustings/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	warmTimeout = 30 * time.Second
	warmLockTTL = time.Minute
)

// Locker 分布式锁，多实例部署时只有一个实例执行预热
type Locker interface {
	TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error)
	UnLock(ctx context.Context, key string, value interface{}) error
}

type EngagementWarmJob struct {
	engagementSvc service.EngagementService
	locker        Locker
}

// NewEngagementWarmJob locker 为 nil 时不加锁直接执行
func NewEngagementWarmJob(engagementSvc service.EngagementService, locker Locker) *EngagementWarmJob {
	return &EngagementWarmJob{
		engagementSvc: engagementSvc,
		locker:        locker,
	}
}

func (s *EngagementWarmJob) Run() {
	traceID := "job-engagement-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), warmTimeout)
	defer cancel()

	if s.locker != nil {
		lockValue := uuid.NewString()
		ok, err := s.locker.TryLock(ctx, consts.EngagementWarmLock, lockValue, warmLockTTL, 0)
		if err != nil {
			log.ErrorContext(ctx, "acquire engagement warm lock failed", "err", err)
			return
		}
		if !ok {
			log.InfoContext(ctx, "engagement warm skipped, lock held by another instance")
			return
		}
		defer func() {
			if err := s.locker.UnLock(context.WithoutCancel(ctx), consts.EngagementWarmLock, lockValue); err != nil {
				log.WarnContext(ctx, "release engagement warm lock failed", "err", err)
			}
		}()
	}

	start := time.Now()
	res, err := s.engagementSvc.Refresh(ctx)
	if err != nil {
		log.ErrorContext(ctx, "engagement warm failed", "err", err)
		return
	}
	log.InfoContext(ctx, "engagement warmed",
		"candidates", res.Candidates,
		"cached", res.Cached,
		"latency", time.Since(start),
	)
}
