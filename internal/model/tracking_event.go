package model

import (
	"time"
)

// TrackingEvent 一次归因到达人的购买
type TrackingEvent struct {
	Source       Platform  `json:"source"`
	Campaign     string    `json:"campaign"`
	InfluencerID uint64    `json:"influencer_id"`
	UserID       uint64    `json:"user_id"`
	Product      string    `json:"product"`
	Brand        Brand     `json:"brand"`
	Date         time.Time `json:"date"`
	Orders       int       `json:"orders"`
	Revenue      float64   `json:"revenue"`
}
