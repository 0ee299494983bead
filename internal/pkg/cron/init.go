package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册预热任务；没有任何任务时不启动调度引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register engagement warm job %q: %w", mgr.engagementSchedule, err)
	}
	entries := mgr.Entries()
	if entries == 0 {
		log.Info("no cron jobs registered, scheduler not started")
		return nil
	}
	log.Info("Cron Jobs starting...", "entries", entries)
	mgr.Start()
	return nil
}
