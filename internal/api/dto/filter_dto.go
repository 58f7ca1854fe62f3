package dto

import (
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/util"
	"fmt"
)

// FilterQueryDTO 看板筛选参数，"All" 或留空表示不筛选
type FilterQueryDTO struct {
	Brand    string `form:"brand" validate:"omitempty,oneof=All MuscleBlaze HKVitals Gritzo"`
	Platform string `form:"platform" validate:"omitempty,oneof=All Instagram YouTube Twitter"`
	Category string `form:"category" validate:"omitempty,oneof=All Fitness Nutrition Wellness Bodybuilding Yoga"`
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

// TopQueryDTO 排行榜参数
type TopQueryDTO struct {
	FilterQueryDTO
	N int `form:"n" validate:"omitempty,min=1,max=100"`
}

func isAll(s string) bool {
	return s == "" || s == consts.AllOption
}

// ToFilter 转换为筛选条件；日期只给出一端时不按日期筛选
func (q *FilterQueryDTO) ToFilter() (attribution.Filter, error) {
	var f attribution.Filter

	if !isAll(q.Brand) {
		b, ok := model.ParseBrand(q.Brand)
		if !ok {
			return f, fmt.Errorf("unknown brand %q", q.Brand)
		}
		f.Brand = &b
	}
	if !isAll(q.Platform) {
		p, ok := model.ParsePlatform(q.Platform)
		if !ok {
			return f, fmt.Errorf("unknown platform %q", q.Platform)
		}
		f.Platform = &p
	}
	if !isAll(q.Category) {
		c, ok := model.ParseCategory(q.Category)
		if !ok {
			return f, fmt.Errorf("unknown category %q", q.Category)
		}
		f.Category = &c
	}

	if q.DateFrom != "" && q.DateTo != "" {
		from, err := util.ParseDate(q.DateFrom, nil)
		if err != nil {
			return f, err
		}
		to, err := util.ParseDate(q.DateTo, nil)
		if err != nil {
			return f, err
		}
		f.DateRange = attribution.NewDateRange(from, to)
	}
	return f, nil
}
