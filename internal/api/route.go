package api

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/api/middleware"
	"CampaignLens/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Metrics & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowOrigins))
	logger.SetupGin(r, cfg.Logstash)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.GET("/filters", group.DashboardHandler.GetFilterOptions)
			dashboardGroup.GET("/overview", group.DashboardHandler.GetOverview)
			dashboardGroup.GET("/influencers", group.DashboardHandler.GetInfluencerMetrics)
			dashboardGroup.GET("/insights", group.DashboardHandler.GetInsights)
			dashboardGroup.GET("/top", group.DashboardHandler.GetTopInfluencers)
			dashboardGroup.GET("/posts", group.DashboardHandler.GetPosts)
			dashboardGroup.GET("/revenue", group.DashboardHandler.GetRevenue)
			dashboardGroup.GET("/payouts", group.DashboardHandler.GetPayouts)
		}

		exportGroup := apiGroup.Group("/export")
		{
			exportGroup.GET("/:kind", group.ExportHandler.Download)
			exportGroup.POST("/:kind/archive", group.ExportHandler.Archive)
		}
	}

	return r
}
