package cron

import log "log/slog"

// InitCron 注册任务、立即预热一次并启动调度
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.warmJob.Run()
	mgr.Start()
	return nil
}
