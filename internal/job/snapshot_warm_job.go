package job

import (
	"CampaignLens/internal/pkg/logger"
	"CampaignLens/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type SnapshotWarmJob struct {
	dashboardSvc service.DashboardService
	timeout      time.Duration
}

func NewSnapshotWarmJob(dashboardSvc service.DashboardService) *SnapshotWarmJob {
	return &SnapshotWarmJob{
		dashboardSvc: dashboardSvc,
		timeout:      30 * time.Second,
	}
}

// Run 重算未筛选的概览与洞察并写入缓存
func (s *SnapshotWarmJob) Run() {
	traceID := "job-warm-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.dashboardSvc.WarmUp(ctx); err != nil {
		log.ErrorContext(ctx, "warm dashboard snapshot error", "err", err)
		return
	}
	log.InfoContext(ctx, "warm dashboard snapshot success", "cost", time.Since(start).String())
}
