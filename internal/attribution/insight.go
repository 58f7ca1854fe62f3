package attribution

import (
	"CampaignLens/internal/model"
	"sort"
)

// UnderperformingROAS ROAS 低于该值视为亏损合作
const UnderperformingROAS = 1.0

// BestPlatform 按 source 汇总收入取最大值，并列时取名称靠前者
func BestPlatform(tracking []model.TrackingEvent) (model.Platform, float64, error) {
	sums := make(map[model.Platform]float64)
	for _, e := range tracking {
		sums[e.Source] += e.Revenue
	}
	key, revenue, ok := argmax(sums)
	if !ok {
		return "", 0, ErrNoData
	}
	return key, revenue, nil
}

// BestCategory 关联达人垂类后汇总收入取最大值；找不到达人的订单不参与统计
func BestCategory(tracking []model.TrackingEvent, directory map[uint64]model.Influencer) (model.Category, float64, error) {
	sums := make(map[model.Category]float64)
	for _, e := range tracking {
		inf, ok := directory[e.InfluencerID]
		if !ok {
			continue
		}
		sums[inf.Category] += e.Revenue
	}
	key, revenue, ok := argmax(sums)
	if !ok {
		return "", 0, ErrNoData
	}
	return key, revenue, nil
}

func argmax[K ~string](sums map[K]float64) (K, float64, bool) {
	keys := make([]K, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		var zero K
		return zero, 0, false
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	best := keys[0]
	for _, k := range keys[1:] {
		if sums[k] > sums[best] {
			best = k
		}
	}
	return best, sums[best], true
}

// ROASPartition 以平均 ROAS 为界的达人数量划分
type ROASPartition struct {
	Average   float64
	Above     int
	AtOrBelow int
}

// PartitionByAverageROAS 严格高于平均值的计入 Above，其余计入 AtOrBelow
func PartitionByAverageROAS(t MetricsTable) (ROASPartition, error) {
	if len(t) == 0 {
		return ROASPartition{}, ErrNoData
	}
	var sum float64
	for _, m := range t {
		sum += m.ROAS
	}
	res := ROASPartition{Average: sum / float64(len(t))}
	for _, m := range t {
		if m.ROAS > res.Average {
			res.Above++
		} else {
			res.AtOrBelow++
		}
	}
	return res, nil
}

// TopByROAS ROAS 降序取前 n，并列按 influencer_id 升序
func TopByROAS(t MetricsTable, n int) []model.InfluencerMetric {
	rows := t.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ROAS > rows[j].ROAS
	})
	return head(rows, n)
}

// BottomByROAS ROAS 升序取前 n，并列按 influencer_id 升序
func BottomByROAS(t MetricsTable, n int) []model.InfluencerMetric {
	rows := t.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ROAS < rows[j].ROAS
	})
	return head(rows, n)
}

// Underperformers ROAS < 1 的达人，升序，最多 n 个
func Underperformers(t MetricsTable, n int) []model.InfluencerMetric {
	poor := make(MetricsTable)
	for id, m := range t {
		if m.ROAS < UnderperformingROAS {
			poor[id] = m
		}
	}
	return BottomByROAS(poor, n)
}

func head(rows []model.InfluencerMetric, n int) []model.InfluencerMetric {
	if n < 0 {
		n = 0
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
