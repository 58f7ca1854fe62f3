package attribution

import "errors"

var (
	// ErrNoData 筛选结果为空，argmax / 平均值类洞察无法给出结论
	ErrNoData = errors.New("no data for current filters")
	// ErrDuplicatePayout 同一达人存在多条结算条款
	ErrDuplicatePayout = errors.New("duplicate payout term for influencer")
)
