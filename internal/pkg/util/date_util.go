package util

import (
	"time"
)

// GetMidnight 返回 t 所在时区当天 0 点
func GetMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey 将时间折算为 yyyymmdd 形式的整数，丢弃时分秒，便于按天比较
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// ParseDate 解析 2006-01-02 格式日期，loc 为空时使用 UTC
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(time.DateOnly, s, loc)
}
