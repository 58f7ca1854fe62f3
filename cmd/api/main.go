package main

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/dataset"
	"CampaignLens/internal/pkg/cron"
	"CampaignLens/internal/pkg/logger"
	"CampaignLens/internal/pkg/minio"
	"CampaignLens/internal/pkg/redis"
	"CampaignLens/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg
	gin.SetMode(cfg.Server.Mode)

	// 初始化日志
	logger.InitLogger(cfg.Logstash)

	// 样例数据，进程内只生成一次
	fixtureCfg, err := wire.FixtureConfig(cfg.Fixture)
	if err != nil {
		log.Error("Fatal error: invalid fixture config", "err", err)
		os.Exit(1)
	}
	ds, err := dataset.NewLoader(fixtureCfg).Load()
	if err != nil {
		log.Error("Fatal error: failed to build dataset", "err", err)
		os.Exit(1)
	}

	// Redis 连接，失败时退化为不缓存
	redisEnabled := false
	if cfg.Redis.Enabled {
		if err = redis.InitRedis(cfg.Redis); err != nil {
			log.Warn("redis unavailable, snapshot cache disabled", "err", err)
		} else {
			redisEnabled = true
			defer func() { _ = redis.Close() }()
		}
	}

	// MinIO 连接，失败时导出归档不可用
	minioEnabled := false
	if cfg.MinIO.Enabled {
		if err = minio.Init(cfg.MinIO); err != nil {
			log.Warn("minio unavailable, export archive disabled", "err", err)
		} else {
			minioEnabled = true
		}
	}

	// 依赖注入
	app := wire.BuildApplication(ds, cfg, redisEnabled, minioEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err = cron.InitCron(app.CronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
