package model

// PayoutTerm 达人结算条款，每个达人至多一条，TotalPayout 恒大于 0
type PayoutTerm struct {
	InfluencerID uint64      `json:"influencer_id"`
	Basis        PayoutBasis `json:"basis"`
	Rate         float64     `json:"rate"`
	Orders       int         `json:"orders"`
	TotalPayout  float64     `json:"total_payout"`
}
