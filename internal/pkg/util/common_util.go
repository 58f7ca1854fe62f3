package util

import (
	"math"
)

// Round 四舍五入保留 places 位小数
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Ptr 返回值的指针
func Ptr[T any](v T) *T {
	return &v
}
