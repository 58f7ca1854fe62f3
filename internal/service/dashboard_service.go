package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/prom"
	"CampaignLens/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// Dataset 看板读取的只读数据源
type Dataset interface {
	Tables() attribution.Tables
	InfluencerByID(id uint64) (model.Influencer, bool)
	Version() string
}

// SnapshotCache 派生结果缓存，失效或不可用时重新计算
type SnapshotCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type DashboardService interface {
	// GetFilterOptions 获取筛选项与帖子日期范围
	GetFilterOptions(ctx context.Context) (*dto.FilterOptionsDTO, error)
	// GetOverview 获取指标卡与图表序列
	GetOverview(ctx context.Context, f attribution.Filter) (*dto.OverviewDTO, error)
	// GetInfluencerMetrics 获取达人指标表
	GetInfluencerMetrics(ctx context.Context, f attribution.Filter) ([]dto.InfluencerMetricDTO, error)
	// GetInsights 获取洞察摘要
	GetInsights(ctx context.Context, f attribution.Filter) (*dto.InsightsDTO, error)
	// GetTopInfluencers 获取 ROAS 排行前 n
	GetTopInfluencers(ctx context.Context, f attribution.Filter, n int) ([]dto.InfluencerMetricDTO, error)
	// GetPosts 获取筛选后的帖子明细
	GetPosts(ctx context.Context, f attribution.Filter) ([]dto.PostRowDTO, error)
	// GetRevenue 获取筛选后的归因订单明细
	GetRevenue(ctx context.Context, f attribution.Filter) ([]dto.RevenueRowDTO, error)
	// GetPayouts 获取完整结算条款
	GetPayouts(ctx context.Context) ([]dto.PayoutRowDTO, error)
	// WarmUp 预计算未筛选视图并写入缓存
	WarmUp(ctx context.Context) error
}

type dashboardServiceImpl struct {
	ds    Dataset
	cache SnapshotCache
	ttl   time.Duration
}

func NewDashboardService(ds Dataset, cache SnapshotCache, ttl time.Duration) DashboardService {
	if cache == nil {
		cache = nopCache{}
	}
	return &dashboardServiceImpl{
		ds:    ds,
		cache: cache,
		ttl:   ttl,
	}
}

// snapshot 每次基于完整结算集合重算
func (s *dashboardServiceImpl) snapshot(f attribution.Filter) (*attribution.Snapshot, error) {
	start := time.Now()
	defer func() {
		prom.SnapshotBuildSeconds.Observe(time.Since(start).Seconds())
	}()
	return attribution.Run(s.ds.Tables(), f)
}

func (s *dashboardServiceImpl) GetFilterOptions(_ context.Context) (*dto.FilterOptionsDTO, error) {
	t := s.ds.Tables()
	res := &dto.FilterOptionsDTO{
		Brands:     uniqueInOrder(t.Tracking, func(e model.TrackingEvent) model.Brand { return e.Brand }),
		Platforms:  uniqueInOrder(t.Posts, func(p model.Post) model.Platform { return p.Platform }),
		Categories: uniqueInOrder(t.Influencers, func(i model.Influencer) model.Category { return i.Category }),
	}
	for _, p := range t.Posts {
		d := util.GetMidnight(p.Date)
		if res.MinDate == nil || d.Before(*res.MinDate) {
			res.MinDate = util.Ptr(d)
		}
		if res.MaxDate == nil || d.After(*res.MaxDate) {
			res.MaxDate = util.Ptr(d)
		}
	}
	return res, nil
}

func (s *dashboardServiceImpl) overviewKey(f attribution.Filter) string {
	return consts.DashboardOverviewKey + s.ds.Version() + ":" + f.Key()
}

func (s *dashboardServiceImpl) insightsKey(f attribution.Filter) string {
	return consts.DashboardInsightsKey + s.ds.Version() + ":" + f.Key()
}

func (s *dashboardServiceImpl) GetOverview(ctx context.Context, f attribution.Filter) (*dto.OverviewDTO, error) {
	key := s.overviewKey(f)
	var cached dto.OverviewDTO
	if s.loadCache(ctx, "overview", key, &cached) {
		return &cached, nil
	}

	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	res := s.buildOverview(snap)
	s.storeCache(ctx, key, res)
	return res, nil
}

func (s *dashboardServiceImpl) buildOverview(snap *attribution.Snapshot) *dto.OverviewDTO {
	res := &dto.OverviewDTO{Filter: snap.Filter.Key()}
	_ = copier.Copy(&res.KPI, attribution.Summarize(snap))
	res.RevenueByPlatform = toSliceDTOs(attribution.RevenueByPlatform(snap.Tracking))
	res.RevenueByBrand = toSliceDTOs(attribution.RevenueByBrand(snap.Tracking))
	res.DailyRevenue = make([]dto.DailyRevenueDTO, 0)
	for _, p := range attribution.DailyRevenue(snap.Tracking) {
		res.DailyRevenue = append(res.DailyRevenue, dto.DailyRevenueDTO{
			Date:    p.Date.Format(time.DateOnly),
			Revenue: p.Revenue,
		})
	}
	res.TopInfluencers = s.toMetricDTOs(snap, attribution.TopByROAS(snap.Metrics, consts.DefaultTopN))
	return res
}

func (s *dashboardServiceImpl) GetInfluencerMetrics(_ context.Context, f attribution.Filter) ([]dto.InfluencerMetricDTO, error) {
	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	return s.toMetricDTOs(snap, snap.Metrics.Rows()), nil
}

func (s *dashboardServiceImpl) GetInsights(ctx context.Context, f attribution.Filter) (*dto.InsightsDTO, error) {
	key := s.insightsKey(f)
	var cached dto.InsightsDTO
	if s.loadCache(ctx, "insights", key, &cached) {
		return &cached, nil
	}

	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	res, err := s.buildInsights(snap)
	if err != nil {
		return nil, err
	}
	s.storeCache(ctx, key, res)
	return res, nil
}

// buildInsights 空结果集转换为 NoData 标记而不是错误
func (s *dashboardServiceImpl) buildInsights(snap *attribution.Snapshot) (*dto.InsightsDTO, error) {
	res := &dto.InsightsDTO{Filter: snap.Filter.Key()}

	platform, platformRevenue, err := attribution.BestPlatform(snap.Tracking)
	switch {
	case errors.Is(err, attribution.ErrNoData):
		res.NoData = true
	case err != nil:
		return nil, err
	default:
		res.BestPlatform = &dto.NamedRevenueDTO{Name: string(platform), Revenue: platformRevenue}
	}

	if category, revenue, err := attribution.BestCategory(snap.Tracking, snap.Directory); err == nil {
		res.BestCategory = &dto.NamedRevenueDTO{Name: string(category), Revenue: revenue}
	}

	if part, err := attribution.PartitionByAverageROAS(snap.Metrics); err == nil {
		res.AverageROAS = part.Average
		res.AboveAverage = part.Above
		res.AtOrBelowAverage = part.AtOrBelow
	} else {
		res.NoData = true
	}

	res.TopInfluencers = s.toMetricDTOs(snap, attribution.TopByROAS(snap.Metrics, consts.InsightTopN))
	res.Underperformers = s.toMetricDTOs(snap, attribution.Underperformers(snap.Metrics, consts.InsightTopN))
	return res, nil
}

func (s *dashboardServiceImpl) GetTopInfluencers(_ context.Context, f attribution.Filter, n int) ([]dto.InfluencerMetricDTO, error) {
	if n <= 0 {
		n = consts.DefaultTopN
	}
	if n > consts.MaxTopN {
		return nil, ErrParamInvalid
	}
	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	return s.toMetricDTOs(snap, attribution.TopByROAS(snap.Metrics, n)), nil
}

func (s *dashboardServiceImpl) GetPosts(_ context.Context, f attribution.Filter) ([]dto.PostRowDTO, error) {
	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	res := make([]dto.PostRowDTO, 0, len(snap.Posts))
	for _, p := range snap.Posts {
		var row dto.PostRowDTO
		_ = copier.Copy(&row, &p)
		row.Name = snap.Directory[p.InfluencerID].Name
		if rate, ok := attribution.EngagementRate(p); ok {
			row.EngagementRate = util.Round(rate, 2)
		}
		res = append(res, row)
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetRevenue(_ context.Context, f attribution.Filter) ([]dto.RevenueRowDTO, error) {
	snap, err := s.snapshot(f)
	if err != nil {
		return nil, err
	}
	res := make([]dto.RevenueRowDTO, 0, len(snap.Tracking))
	for _, e := range snap.Tracking {
		var row dto.RevenueRowDTO
		_ = copier.Copy(&row, &e)
		row.Name = snap.Directory[e.InfluencerID].Name
		res = append(res, row)
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetPayouts(_ context.Context) ([]dto.PayoutRowDTO, error) {
	payouts := s.ds.Tables().Payouts
	res := make([]dto.PayoutRowDTO, 0, len(payouts))
	for _, p := range payouts {
		var row dto.PayoutRowDTO
		_ = copier.Copy(&row, &p)
		if inf, ok := s.ds.InfluencerByID(p.InfluencerID); ok {
			row.Name = inf.Name
		}
		res = append(res, row)
	}
	return res, nil
}

// WarmUp 跳过缓存读取，直接覆盖未筛选视图
func (s *dashboardServiceImpl) WarmUp(ctx context.Context) error {
	var all attribution.Filter
	snap, err := s.snapshot(all)
	if err != nil {
		return err
	}

	insights, err := s.buildInsights(snap)
	if err != nil {
		return err
	}
	s.storeCache(ctx, s.overviewKey(all), s.buildOverview(snap))
	s.storeCache(ctx, s.insightsKey(all), insights)

	log.InfoContext(ctx, "dashboard snapshot warmed",
		"tracking", len(snap.Tracking),
		"influencers", len(snap.Metrics))
	return nil
}

func (s *dashboardServiceImpl) loadCache(ctx context.Context, view, key string, dst any) bool {
	hit, err := s.cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		prom.SnapshotCacheTotal.WithLabelValues(view, "error").Inc()
		log.WarnContext(ctx, "snapshot cache get failed", "key", key, "err", err)
		return false
	case hit:
		prom.SnapshotCacheTotal.WithLabelValues(view, "hit").Inc()
		return true
	default:
		prom.SnapshotCacheTotal.WithLabelValues(view, "miss").Inc()
		return false
	}
}

func (s *dashboardServiceImpl) storeCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		log.WarnContext(ctx, "snapshot cache set failed", "key", key, "err", err)
	}
}

// toMetricDTOs 指标行关联达人名称、垂类与平台
func (s *dashboardServiceImpl) toMetricDTOs(snap *attribution.Snapshot, rows []model.InfluencerMetric) []dto.InfluencerMetricDTO {
	res := make([]dto.InfluencerMetricDTO, 0, len(rows))
	for _, m := range rows {
		var item dto.InfluencerMetricDTO
		_ = copier.Copy(&item, &m)
		if inf, ok := snap.Directory[m.InfluencerID]; ok {
			item.Name = inf.Name
			item.Category = inf.Category
			item.Platform = inf.Platform
		}
		res = append(res, item)
	}
	return res
}

func toSliceDTOs(groups []attribution.RevenueSlice) []dto.RevenueSliceDTO {
	res := make([]dto.RevenueSliceDTO, 0, len(groups))
	for _, sl := range groups {
		res = append(res, dto.RevenueSliceDTO{Key: sl.Key, Revenue: sl.Revenue, Orders: sl.Orders})
	}
	return res
}

func uniqueInOrder[T any, K comparable](rows []T, key func(T) K) []K {
	seen := make(map[K]struct{})
	var res []K
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, k)
	}
	return res
}

type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (nopCache) Set(context.Context, string, any, time.Duration) error { return nil }
