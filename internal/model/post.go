package model

import (
	"time"
)

// Post 达人发布的一条推广内容
type Post struct {
	InfluencerID uint64    `json:"influencer_id"`
	Platform     Platform  `json:"platform"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url"`
	Caption      string    `json:"caption"`
	Reach        int64     `json:"reach"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	Brand        Brand     `json:"brand"`
}

// Engagement 互动数 = 点赞 + 评论
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments
}
