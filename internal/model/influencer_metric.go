package model

// InfluencerMetric 单个达人的归因指标，每次筛选后重新计算
type InfluencerMetric struct {
	InfluencerID       uint64   `json:"influencer_id"`
	Revenue            float64  `json:"revenue"`
	Orders             int      `json:"orders"`
	TotalPayout        *float64 `json:"total_payout"` // nil 表示没有结算条款，花费未知
	ROAS               float64  `json:"roas"`
	IncrementalRevenue float64  `json:"incremental_revenue"`
	IncrementalROAS    float64  `json:"incremental_roas"`
}

// HasPayout 是否存在结算条款
func (m InfluencerMetric) HasPayout() bool {
	return m.TotalPayout != nil
}
