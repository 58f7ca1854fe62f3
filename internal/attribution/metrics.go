package attribution

import (
	"CampaignLens/internal/model"
	"fmt"
	"sort"
)

// IncrementalFactor 增量收入折算系数，假定 20% 的订单即使没有达人也会自然发生
const IncrementalFactor = 0.8

// MetricsTable influencer_id -> 指标
type MetricsTable map[uint64]model.InfluencerMetric

// Rows 按 influencer_id 升序返回
func (t MetricsTable) Rows() []model.InfluencerMetric {
	rows := make([]model.InfluencerMetric, 0, len(t))
	for _, m := range t {
		rows = append(rows, m)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].InfluencerID < rows[j].InfluencerID
	})
	return rows
}

type metricAcc struct {
	revenue float64
	orders  int
}

// ComputeMetrics 归因订单左连接结算条款后按达人聚合，并计算 ROAS 与增量 ROAS。
// payouts 必须是未经筛选的完整结算集合。
func ComputeMetrics(tracking []model.TrackingEvent, payouts []model.PayoutTerm) (MetricsTable, error) {
	payoutByID := make(map[uint64]float64, len(payouts))
	for _, p := range payouts {
		if _, exists := payoutByID[p.InfluencerID]; exists {
			return nil, fmt.Errorf("%w: influencer %d", ErrDuplicatePayout, p.InfluencerID)
		}
		payoutByID[p.InfluencerID] = p.TotalPayout
	}

	groups := make(map[uint64]*metricAcc)
	for _, e := range tracking {
		acc, ok := groups[e.InfluencerID]
		if !ok {
			acc = &metricAcc{}
			groups[e.InfluencerID] = acc
		}
		acc.revenue += e.Revenue
		acc.orders += e.Orders
	}

	table := make(MetricsTable, len(groups))
	for id, acc := range groups {
		m := model.InfluencerMetric{
			InfluencerID:       id,
			Revenue:            acc.revenue,
			Orders:             acc.orders,
			IncrementalRevenue: acc.revenue * IncrementalFactor,
		}
		if total, ok := payoutByID[id]; ok {
			payout := total
			m.TotalPayout = &payout
			m.ROAS = safeRatio(m.Revenue, payout)
			m.IncrementalROAS = safeRatio(m.IncrementalRevenue, payout)
		}
		table[id] = m
	}
	return table, nil
}

// safeRatio 除零保护：花费未知或为 0 时返回 0，保证排序有定义，并非真实估值
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
