package api

import "CampaignLens/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	DashboardHandler *handler.DashboardHandler
	ExportHandler    *handler.ExportHandler
}
