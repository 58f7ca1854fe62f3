package dataset

import (
	"errors"
)

// ErrSchemaViolation 数据集不满足行约束或引用完整性，属于致命错误
var ErrSchemaViolation = errors.New("dataset schema violation")
