package service

import (
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/dataset"
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	ServiceUnavailable  = 503
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrExportKindInvalid  = errors.New("不支持的导出类型")
	ErrExportSinkDisabled = errors.New("导出归档未启用")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:                BadRequest,
	ErrExportKindInvalid:           BadRequest,
	ErrExportSinkDisabled:          ServiceUnavailable,
	attribution.ErrDuplicatePayout: InternalServerError,
	dataset.ErrSchemaViolation:     InternalServerError,
	UnExpectedError:                InternalServerError,
}

// LookupCode 按 errors.Is 匹配业务码
func LookupCode(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
