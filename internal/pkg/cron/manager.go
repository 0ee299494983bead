package cron

import (
	"Hustings/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	engagementWarmJob  *job.EngagementWarmJob
	engagementSchedule string
}

// NewCronManager schedule 使用带秒的六段格式，为空时不注册预热任务
func NewCronManager(engagementWarmJob *job.EngagementWarmJob, engagementSchedule string) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		engagementWarmJob:  engagementWarmJob,
		engagementSchedule: engagementSchedule,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.engagementSchedule == "" || s.engagementWarmJob == nil {
		log.Info("engagement warm job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.engagementSchedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.engagementWarmJob)); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
