package cron

import (
	"CampaignLens/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine   *cron.Cron
	warmSpec string
	warmJob  *job.SnapshotWarmJob
}

func NewCronManager(warmSpec string, warmJob *job.SnapshotWarmJob) *Manager {
	if warmSpec == "" {
		warmSpec = "@daily"
	}
	return &Manager{
		engine:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		warmSpec: warmSpec,
		warmJob:  warmJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.warmSpec, s.warmJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "warm_spec", s.warmSpec)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
