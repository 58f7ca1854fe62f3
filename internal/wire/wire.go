package wire

import (
	"CampaignLens/internal/api"
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/api/handler"
	"CampaignLens/internal/dataset"
	"CampaignLens/internal/job"
	"CampaignLens/internal/pkg/cron"
	"CampaignLens/internal/pkg/minio"
	"CampaignLens/internal/pkg/redis"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

// FixtureConfig 配置转换为生成参数，anchor_date 为空时以启动时间为基准
func FixtureConfig(cfg config.FixtureConfig) (dataset.FixtureConfig, error) {
	res := dataset.FixtureConfig{
		Seed:             cfg.Seed,
		PostCount:        cfg.PostCount,
		OrderRate:        cfg.OrderRate,
		ConversionRate:   cfg.ConversionRate,
		MaxOrdersPerPost: cfg.MaxOrdersPerPost,
		LookbackDays:     cfg.LookbackDays,
	}
	if cfg.AnchorDate != "" {
		anchor, err := util.ParseDate(cfg.AnchorDate, time.Local)
		if err != nil {
			return res, fmt.Errorf("invalid fixture.anchor_date %q: %w", cfg.AnchorDate, err)
		}
		res.Anchor = anchor
	}
	return res, nil
}

// BuildApplication redisEnabled / minioEnabled 表示对应客户端已初始化
func BuildApplication(ds *dataset.Dataset, cfg *config.Config, redisEnabled, minioEnabled bool) *ApplicationContainer {
	var cache service.SnapshotCache
	if redisEnabled {
		cache = redis.NewSnapshotStore()
	}
	var sink service.ArchiveSink
	if minioEnabled {
		sink = minio.NewArchiveSink(time.Duration(cfg.MinIO.PresignMinute) * time.Minute)
	}

	dashboardSvc := service.NewDashboardService(ds, cache, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	exportSvc := service.NewExportService(dashboardSvc, sink)

	handlers := &api.HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		ExportHandler:    handler.NewExportHandler(exportSvc),
	}
	router := api.SetupRouter(handlers, cfg)

	warmJob := job.NewSnapshotWarmJob(dashboardSvc)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cron.NewCronManager(cfg.Cron.WarmSpec, warmJob),
	}
}
