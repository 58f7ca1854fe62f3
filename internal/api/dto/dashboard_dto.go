package dto

import (
	"CampaignLens/internal/model"
	"time"
)

// FilterOptionsDTO 筛选下拉框可选项
type FilterOptionsDTO struct {
	Brands     []model.Brand    `json:"brands"`
	Platforms  []model.Platform `json:"platforms"`
	Categories []model.Category `json:"categories"`
	MinDate    *time.Time       `json:"min_date"`
	MaxDate    *time.Time       `json:"max_date"`
}

// KPIDTO 顶部指标卡
type KPIDTO struct {
	TotalRevenue   float64 `json:"total_revenue"`
	Orders         int     `json:"orders"`
	TotalSpend     float64 `json:"total_spend"`
	OverallROAS    float64 `json:"overall_roas"`
	TotalReach     int64   `json:"total_reach"`
	PostCount      int     `json:"post_count"`
	EngagementRate float64 `json:"engagement_rate"`
	HasEngagement  bool    `json:"has_engagement"`
}

type RevenueSliceDTO struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type DailyRevenueDTO struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// OverviewDTO 概览页：指标卡 + 图表序列
type OverviewDTO struct {
	Filter            string                `json:"filter"`
	KPI               KPIDTO                `json:"kpi"`
	RevenueByPlatform []RevenueSliceDTO     `json:"revenue_by_platform"`
	RevenueByBrand    []RevenueSliceDTO     `json:"revenue_by_brand"`
	DailyRevenue      []DailyRevenueDTO     `json:"daily_revenue"`
	TopInfluencers    []InfluencerMetricDTO `json:"top_influencers"`
}

// InfluencerMetricDTO 指标行关联达人属性
type InfluencerMetricDTO struct {
	InfluencerID       uint64         `json:"influencer_id"`
	Name               string         `json:"name"`
	Category           model.Category `json:"category"`
	Platform           model.Platform `json:"platform"`
	Revenue            float64        `json:"revenue"`
	Orders             int            `json:"orders"`
	TotalPayout        *float64       `json:"total_payout"`
	ROAS               float64        `json:"roas"`
	IncrementalRevenue float64        `json:"incremental_revenue"`
	IncrementalROAS    float64        `json:"incremental_roas"`
}

type NamedRevenueDTO struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// InsightsDTO 洞察；NoData 为 true 时其余字段无意义
type InsightsDTO struct {
	Filter           string                `json:"filter"`
	NoData           bool                  `json:"no_data"`
	BestPlatform     *NamedRevenueDTO      `json:"best_platform"`
	BestCategory     *NamedRevenueDTO      `json:"best_category"`
	AverageROAS      float64               `json:"average_roas"`
	AboveAverage     int                   `json:"above_average"`
	AtOrBelowAverage int                   `json:"at_or_below_average"`
	TopInfluencers   []InfluencerMetricDTO `json:"top_influencers"`
	Underperformers  []InfluencerMetricDTO `json:"underperformers"`
}

type PostRowDTO struct {
	InfluencerID   uint64         `json:"influencer_id"`
	Name           string         `json:"name"`
	Platform       model.Platform `json:"platform"`
	Date           time.Time      `json:"date"`
	URL            string         `json:"url"`
	Caption        string         `json:"caption"`
	Reach          int64          `json:"reach"`
	Likes          int64          `json:"likes"`
	Comments       int64          `json:"comments"`
	Brand          model.Brand    `json:"brand"`
	EngagementRate float64        `json:"engagement_rate"`
}

type RevenueRowDTO struct {
	Source       model.Platform `json:"source"`
	Campaign     string         `json:"campaign"`
	InfluencerID uint64         `json:"influencer_id"`
	Name         string         `json:"name"`
	UserID       uint64         `json:"user_id"`
	Product      string         `json:"product"`
	Brand        model.Brand    `json:"brand"`
	Date         time.Time      `json:"date"`
	Orders       int            `json:"orders"`
	Revenue      float64        `json:"revenue"`
}

type PayoutRowDTO struct {
	InfluencerID uint64            `json:"influencer_id"`
	Name         string            `json:"name"`
	Basis        model.PayoutBasis `json:"basis"`
	Rate         float64           `json:"rate"`
	Orders       int               `json:"orders"`
	TotalPayout  float64           `json:"total_payout"`
}

// ArchiveDTO 归档结果
type ArchiveDTO struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Rows       int    `json:"rows"`
}
