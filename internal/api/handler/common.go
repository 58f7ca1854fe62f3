package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

// bindFilter 绑定并校验筛选参数
func bindFilter(c *gin.Context) (attribution.Filter, error) {
	var q dto.FilterQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		return attribution.Filter{}, service.ErrParamInvalid
	}
	return toFilter(&q)
}

func toFilter(q *dto.FilterQueryDTO) (attribution.Filter, error) {
	if err := util.ValidateDTO(q); err != nil {
		return attribution.Filter{}, err
	}
	f, err := q.ToFilter()
	if err != nil {
		return attribution.Filter{}, fmt.Errorf("%w: %v", service.ErrParamInvalid, err)
	}
	return f, nil
}
