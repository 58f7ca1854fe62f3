package attribution

import (
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/util"
	"sort"
	"time"
)

// Summary 看板顶部 KPI
type Summary struct {
	TotalRevenue   float64
	Orders         int
	TotalSpend     float64
	OverallROAS    float64
	TotalReach     int64
	PostCount      int
	EngagementRate float64
	// HasEngagement 触达为 0 时互动率无意义
	HasEngagement bool
}

// Summarize 计算快照的 KPI。花费取筛选后订单涉及达人的完整结算金额
func Summarize(s *Snapshot) Summary {
	var res Summary

	involved := make(map[uint64]struct{})
	for _, e := range s.Tracking {
		res.TotalRevenue += e.Revenue
		res.Orders += e.Orders
		involved[e.InfluencerID] = struct{}{}
	}
	for _, p := range s.Payouts {
		if _, ok := involved[p.InfluencerID]; ok {
			res.TotalSpend += p.TotalPayout
		}
	}
	res.OverallROAS = safeRatio(res.TotalRevenue, res.TotalSpend)

	var engagement int64
	for _, p := range s.Posts {
		res.TotalReach += p.Reach
		engagement += p.Engagement()
	}
	res.PostCount = len(s.Posts)
	if res.TotalReach > 0 {
		res.EngagementRate = float64(engagement) / float64(res.TotalReach) * 100
		res.HasEngagement = true
	}
	return res
}

// EngagementRate 单帖互动率（百分比），触达为 0 时返回 false
func EngagementRate(p model.Post) (float64, bool) {
	if p.Reach <= 0 {
		return 0, false
	}
	return float64(p.Engagement()) / float64(p.Reach) * 100, true
}

// RevenueSlice 分组汇总结果
type RevenueSlice struct {
	Key     string
	Revenue float64
	Orders  int
}

// RevenueByPlatform 按 source 汇总，按平台名升序
func RevenueByPlatform(tracking []model.TrackingEvent) []RevenueSlice {
	return groupRevenue(tracking, func(e model.TrackingEvent) string { return string(e.Source) })
}

// RevenueByBrand 按品牌汇总收入与订单数，按品牌名升序
func RevenueByBrand(tracking []model.TrackingEvent) []RevenueSlice {
	return groupRevenue(tracking, func(e model.TrackingEvent) string { return string(e.Brand) })
}

func groupRevenue(tracking []model.TrackingEvent, keyFn func(model.TrackingEvent) string) []RevenueSlice {
	groups := make(map[string]*RevenueSlice)
	for _, e := range tracking {
		k := keyFn(e)
		g, ok := groups[k]
		if !ok {
			g = &RevenueSlice{Key: k}
			groups[k] = g
		}
		g.Revenue += e.Revenue
		g.Orders += e.Orders
	}
	res := make([]RevenueSlice, 0, len(groups))
	for _, g := range groups {
		res = append(res, *g)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })
	return res
}

// DailyPoint 日收入点
type DailyPoint struct {
	Date    time.Time
	Revenue float64
}

// DailyRevenue 按自然日汇总收入，日期升序
func DailyRevenue(tracking []model.TrackingEvent) []DailyPoint {
	groups := make(map[int]*DailyPoint)
	for _, e := range tracking {
		k := util.DateKey(e.Date)
		g, ok := groups[k]
		if !ok {
			g = &DailyPoint{Date: util.GetMidnight(e.Date)}
			groups[k] = g
		}
		g.Revenue += e.Revenue
	}
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	res := make([]DailyPoint, 0, len(keys))
	for _, k := range keys {
		res = append(res, *groups[k])
	}
	return res
}
