package attribution

import (
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/util"
	"strings"
	"time"
)

// DateRange 闭区间，按自然日比较
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange 只有同时给出起止两个边界时才构造区间，否则返回 nil（不筛选）
func NewDateRange(bounds ...time.Time) *DateRange {
	if len(bounds) < 2 {
		return nil
	}
	return &DateRange{Start: bounds[0], End: bounds[1]}
}

// Contains 判断 t 所在自然日是否落在区间内
func (r DateRange) Contains(t time.Time) bool {
	k := util.DateKey(t)
	return k >= util.DateKey(r.Start) && k <= util.DateKey(r.End)
}

// Filter 看板筛选条件，nil 表示该维度不筛选
type Filter struct {
	Brand     *model.Brand
	Platform  *model.Platform
	Category  *model.Category
	DateRange *DateRange
}

// IsZero 所有维度均未设置
func (f Filter) IsZero() bool {
	return f.Brand == nil && f.Platform == nil && f.Category == nil && f.DateRange == nil
}

// Key 生成稳定的缓存 key 片段
func (f Filter) Key() string {
	parts := []string{"brand=All", "platform=All", "category=All", "date=All"}
	if f.Brand != nil {
		parts[0] = "brand=" + string(*f.Brand)
	}
	if f.Platform != nil {
		parts[1] = "platform=" + string(*f.Platform)
	}
	if f.Category != nil {
		parts[2] = "category=" + string(*f.Category)
	}
	if f.DateRange != nil {
		parts[3] = "date=" + f.DateRange.Start.Format(time.DateOnly) + "~" + f.DateRange.End.Format(time.DateOnly)
	}
	return strings.Join(parts, "|")
}

// ApplyFilters 对帖子与归因订单同时应用四个维度（AND 语义）。
// 达人集合只受垂类筛选影响，品牌 / 平台 / 日期不收窄达人集合。
func ApplyFilters(
	posts []model.Post,
	tracking []model.TrackingEvent,
	influencers []model.Influencer,
	f Filter,
) ([]model.Post, []model.TrackingEvent, []model.Influencer) {
	var categoryIDs map[uint64]struct{}
	if f.Category != nil {
		categoryIDs = make(map[uint64]struct{})
		for _, inf := range influencers {
			if inf.Category == *f.Category {
				categoryIDs[inf.ID] = struct{}{}
			}
		}
	}

	inCategory := func(id uint64) bool {
		if categoryIDs == nil {
			return true
		}
		_, ok := categoryIDs[id]
		return ok
	}

	outPosts := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if f.Brand != nil && p.Brand != *f.Brand {
			continue
		}
		if f.Platform != nil && p.Platform != *f.Platform {
			continue
		}
		if !inCategory(p.InfluencerID) {
			continue
		}
		if f.DateRange != nil && !f.DateRange.Contains(p.Date) {
			continue
		}
		outPosts = append(outPosts, p)
	}

	outTracking := make([]model.TrackingEvent, 0, len(tracking))
	for _, e := range tracking {
		if f.Brand != nil && e.Brand != *f.Brand {
			continue
		}
		if f.Platform != nil && e.Source != *f.Platform {
			continue
		}
		if !inCategory(e.InfluencerID) {
			continue
		}
		if f.DateRange != nil && !f.DateRange.Contains(e.Date) {
			continue
		}
		outTracking = append(outTracking, e)
	}

	outInfluencers := make([]model.Influencer, 0, len(influencers))
	for _, inf := range influencers {
		if f.Category != nil && inf.Category != *f.Category {
			continue
		}
		outInfluencers = append(outInfluencers, inf)
	}

	return outPosts, outTracking, outInfluencers
}
