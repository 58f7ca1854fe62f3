package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// GetFilterOptions 获取筛选项
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	res, err := h.dashboardSvc.GetFilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetOverview 获取概览
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetOverview(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetInfluencerMetrics 获取达人指标表
func (h *DashboardHandler) GetInfluencerMetrics(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetInfluencerMetrics(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetInsights 获取洞察
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetInsights(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetTopInfluencers 获取 ROAS 排行
func (h *DashboardHandler) GetTopInfluencers(c *gin.Context) {
	var q dto.TopQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&q); err != nil {
		response.Error(c, err)
		return
	}
	f, err := toFilter(&q.FilterQueryDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetTopInfluencers(c.Request.Context(), f, q.N)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetPosts 获取帖子明细
func (h *DashboardHandler) GetPosts(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetPosts(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetRevenue 获取收入明细
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.dashboardSvc.GetRevenue(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetPayouts 获取结算汇总
func (h *DashboardHandler) GetPayouts(c *gin.Context) {
	res, err := h.dashboardSvc.GetPayouts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
