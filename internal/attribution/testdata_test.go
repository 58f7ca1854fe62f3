package attribution

import (
	"CampaignLens/internal/model"
	"math"
	"time"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 15, 30, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func sampleTables() Tables {
	influencers := []model.Influencer{
		{ID: 1, Name: "FitnessFrida", Category: model.CategoryFitness, Gender: model.GenderFemale, FollowerCount: 120000, Platform: model.PlatformInstagram},
		{ID: 2, Name: "HealthGuru_Sam", Category: model.CategoryNutrition, Gender: model.GenderMale, FollowerCount: 80000, Platform: model.PlatformYouTube},
		{ID: 3, Name: "YogaQueen_Maya", Category: model.CategoryYoga, Gender: model.GenderFemale, FollowerCount: 450000, Platform: model.PlatformTwitter},
		{ID: 4, Name: "ProteinPro_Raj", Category: model.CategoryFitness, Gender: model.GenderMale, FollowerCount: 30000, Platform: model.PlatformYouTube},
	}
	posts := []model.Post{
		{InfluencerID: 1, Platform: model.PlatformInstagram, Date: day(1), Reach: 1000, Likes: 100, Comments: 10, Brand: model.BrandMuscleBlaze},
		{InfluencerID: 2, Platform: model.PlatformYouTube, Date: day(2), Reach: 2000, Likes: 50, Comments: 5, Brand: model.BrandHKVitals},
		{InfluencerID: 3, Platform: model.PlatformTwitter, Date: day(3), Reach: 500, Likes: 20, Comments: 1, Brand: model.BrandGritzo},
		{InfluencerID: 4, Platform: model.PlatformYouTube, Date: day(5), Reach: 800, Likes: 40, Comments: 2, Brand: model.BrandMuscleBlaze},
	}
	tracking := []model.TrackingEvent{
		{Source: model.PlatformInstagram, InfluencerID: 1, Brand: model.BrandMuscleBlaze, Date: day(1), Orders: 1, Revenue: 1000},
		{Source: model.PlatformInstagram, InfluencerID: 1, Brand: model.BrandMuscleBlaze, Date: day(2), Orders: 1, Revenue: 2000},
		{Source: model.PlatformInstagram, InfluencerID: 1, Brand: model.BrandHKVitals, Date: day(4), Orders: 1, Revenue: 500},
		{Source: model.PlatformYouTube, InfluencerID: 2, Brand: model.BrandHKVitals, Date: day(2), Orders: 1, Revenue: 700},
		{Source: model.PlatformTwitter, InfluencerID: 3, Brand: model.BrandGritzo, Date: day(3), Orders: 1, Revenue: 300},
		{Source: model.PlatformYouTube, InfluencerID: 4, Brand: model.BrandMuscleBlaze, Date: day(6), Orders: 1, Revenue: 900},
	}
	payouts := []model.PayoutTerm{
		{InfluencerID: 1, Basis: model.BasisPost, Rate: 1000, TotalPayout: 1000},
		{InfluencerID: 3, Basis: model.BasisOrder, Rate: 100, Orders: 1, TotalPayout: 600},
		{InfluencerID: 4, Basis: model.BasisOrder, Rate: 150, Orders: 1, TotalPayout: 150},
	}
	return Tables{Influencers: influencers, Posts: posts, Tracking: tracking, Payouts: payouts}
}
