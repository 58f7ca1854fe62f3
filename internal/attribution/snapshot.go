package attribution

import (
	"CampaignLens/internal/model"
)

// Tables 四张原始表
type Tables struct {
	Influencers []model.Influencer
	Posts       []model.Post
	Tracking    []model.TrackingEvent
	Payouts     []model.PayoutTerm
}

// Snapshot 一次筛选的完整结果
type Snapshot struct {
	Filter      Filter
	Posts       []model.Post
	Tracking    []model.TrackingEvent
	Influencers []model.Influencer
	// Payouts 始终是完整结算集合：结算是合同事实，不随筛选变化
	Payouts []model.PayoutTerm
	Metrics MetricsTable
	// Directory 未筛选的达人索引，用于名称 / 垂类关联
	Directory map[uint64]model.Influencer
}

// Run 应用筛选并基于完整结算集合重算指标
func Run(t Tables, f Filter) (*Snapshot, error) {
	posts, tracking, influencers := ApplyFilters(t.Posts, t.Tracking, t.Influencers, f)

	metrics, err := ComputeMetrics(tracking, t.Payouts)
	if err != nil {
		return nil, err
	}

	directory := make(map[uint64]model.Influencer, len(t.Influencers))
	for _, inf := range t.Influencers {
		directory[inf.ID] = inf
	}

	return &Snapshot{
		Filter:      f,
		Posts:       posts,
		Tracking:    tracking,
		Influencers: influencers,
		Payouts:     t.Payouts,
		Metrics:     metrics,
		Directory:   directory,
	}, nil
}

// PayoutFor 查找达人的结算条款
func (s *Snapshot) PayoutFor(influencerID uint64) (model.PayoutTerm, bool) {
	for _, p := range s.Payouts {
		if p.InfluencerID == influencerID {
			return p, true
		}
	}
	return model.PayoutTerm{}, false
}
