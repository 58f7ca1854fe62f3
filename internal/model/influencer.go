package model

// Influencer 达人基础信息，创建后不可变
type Influencer struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Gender        Gender   `json:"gender"`
	FollowerCount int64    `json:"follower_count"`
	Platform      Platform `json:"platform"`
}
