package attribution

import (
	"CampaignLens/internal/model"
	"testing"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := Summarize(sampleSnapshot(t))
	if !approx(s.TotalRevenue, 5400) || s.Orders != 6 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if !approx(s.TotalSpend, 1750) || !approx(s.OverallROAS, 5400.0/1750.0) {
		t.Fatalf("unexpected spend: %+v", s)
	}
	if s.TotalReach != 4300 || s.PostCount != 4 {
		t.Fatalf("unexpected reach: %+v", s)
	}
	if !s.HasEngagement || !approx(s.EngagementRate, 228.0/4300.0*100) {
		t.Fatalf("unexpected engagement: %+v", s)
	}
}

func TestSummarizeSpendFollowsFilteredInfluencers(t *testing.T) {
	t.Parallel()
	snap, err := Run(sampleTables(), Filter{Platform: ptr(model.PlatformTwitter)})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	s := Summarize(snap)
	if !approx(s.TotalSpend, 600) || !approx(s.OverallROAS, 0.5) {
		t.Fatalf("unexpected spend: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	snap, err := Run(sampleTables(), Filter{DateRange: NewDateRange(day(28), day(29))})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	s := Summarize(snap)
	if s.TotalRevenue != 0 || s.OverallROAS != 0 || s.HasEngagement {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestEngagementRate(t *testing.T) {
	t.Parallel()
	if _, ok := EngagementRate(model.Post{}); ok {
		t.Fatalf("zero reach should have no rate")
	}
	rate, ok := EngagementRate(model.Post{Reach: 200, Likes: 18, Comments: 2})
	if !ok || !approx(rate, 10) {
		t.Fatalf("unexpected rate: %v %v", rate, ok)
	}
}

func TestRevenueGroups(t *testing.T) {
	t.Parallel()
	snap := sampleSnapshot(t)

	platforms := RevenueByPlatform(snap.Tracking)
	if len(platforms) != 3 || platforms[0].Key != "Instagram" || platforms[1].Key != "Twitter" || platforms[2].Key != "YouTube" {
		t.Fatalf("unexpected platform order: %+v", platforms)
	}
	if !approx(platforms[2].Revenue, 1600) || platforms[2].Orders != 2 {
		t.Fatalf("unexpected youtube slice: %+v", platforms[2])
	}

	brands := RevenueByBrand(snap.Tracking)
	if len(brands) != 3 || brands[0].Key != "Gritzo" {
		t.Fatalf("unexpected brand slices: %+v", brands)
	}

	daily := DailyRevenue(snap.Tracking)
	if len(daily) != 5 {
		t.Fatalf("expected 5 days, got %d", len(daily))
	}
	if daily[1].Date.Day() != 2 || !approx(daily[1].Revenue, 2700) {
		t.Fatalf("unexpected day 2: %+v", daily[1])
	}
	if daily[1].Date.Hour() != 0 {
		t.Fatalf("daily bucket should be midnight: %v", daily[1].Date)
	}
}
