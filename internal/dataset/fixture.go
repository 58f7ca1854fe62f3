package dataset

import (
	"CampaignLens/internal/model"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var influencerNames = []string{
	"FitnessFrida", "HealthGuru_Sam", "YogaQueen_Maya", "ProteinPro_Raj", "WellnessWarrior",
	"FitLife_Arya", "MuscleMania_Dev", "HealthyHabits_Ria", "FitnessFirst_Karan", "NutriNinja_Priya",
	"GymBeast_Rohit", "WellnessWiz_Sanya", "FitnessFanatic_Amit", "HealthHub_Neha", "ProteinPower_Vikram",
}

var products = []string{"Whey Protein", "Multivitamins", "Pre-workout", "BCAA", "Omega-3", "Protein Bars"}

// FixtureConfig 样例数据生成参数
type FixtureConfig struct {
	Seed             uint64
	PostCount        int
	OrderRate        float64
	ConversionRate   float64
	MaxOrdersPerPost int
	LookbackDays     int
	// Anchor 帖子日期基准，零值表示当前时间
	Anchor time.Time
}

// DefaultFixtureConfig 默认生成参数
func DefaultFixtureConfig() FixtureConfig {
	return FixtureConfig{
		Seed:             42,
		PostCount:        200,
		OrderRate:        0.7,
		ConversionRate:   0.01,
		MaxOrdersPerPost: 25,
		LookbackDays:     90,
	}
}

func (c FixtureConfig) normalize() FixtureConfig {
	def := DefaultFixtureConfig()
	if c.PostCount <= 0 {
		c.PostCount = def.PostCount
	}
	if c.OrderRate < 0 || c.OrderRate > 1 {
		c.OrderRate = def.OrderRate
	}
	if c.ConversionRate <= 0 {
		c.ConversionRate = def.ConversionRate
	}
	if c.MaxOrdersPerPost <= 0 {
		c.MaxOrdersPerPost = def.MaxOrdersPerPost
	}
	if c.LookbackDays <= 0 {
		c.LookbackDays = def.LookbackDays
	}
	if c.Anchor.IsZero() {
		c.Anchor = time.Now()
	}
	return c
}

type generator struct {
	r *rand.Rand
}

// between 返回 [lo, hi] 内的整数
func (g generator) between(lo, hi int) int {
	return lo + g.r.IntN(hi-lo+1)
}

func (g generator) uniform(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

func pick[T any](g generator, list []T) T {
	return list[g.r.IntN(len(list))]
}

// Synthesize 按配置确定性地生成样例数据集，相同 seed 与 anchor 得到相同的数据
func Synthesize(cfg FixtureConfig) (*Dataset, error) {
	cfg = cfg.normalize()
	g := generator{r: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))}

	influencers := make([]model.Influencer, 0, len(influencerNames))
	for i, name := range influencerNames {
		influencers = append(influencers, model.Influencer{
			ID:            uint64(i + 1),
			Name:          name,
			Category:      pick(g, model.Categories),
			Gender:        pick(g, model.Genders),
			FollowerCount: int64(g.between(10_000, 5_000_000)),
			Platform:      pick(g, model.Platforms),
		})
	}

	posts := make([]model.Post, 0, cfg.PostCount)
	var tracking []model.TrackingEvent
	postsByID := make(map[uint64]int)
	ordersByID := make(map[uint64]int)

	for range cfg.PostCount {
		inf := pick(g, influencers)
		platform := pick(g, model.Platforms)
		brand := pick(g, model.Brands)
		date := cfg.Anchor.AddDate(0, 0, -g.between(1, cfg.LookbackDays))

		reach := int64(float64(inf.FollowerCount) * g.uniform(0.1, 0.4))
		likes := int64(float64(reach) * g.uniform(0.02, 0.15))
		comments := int64(float64(likes) * g.uniform(0.01, 0.05))

		posts = append(posts, model.Post{
			InfluencerID: inf.ID,
			Platform:     platform,
			Date:         date,
			URL:          fmt.Sprintf("https://%s.com/post/%d", strings.ToLower(string(platform)), g.between(100_000, 999_999)),
			Caption:      fmt.Sprintf("Check out this amazing %s product! #fitness #health", brand),
			Reach:        reach,
			Likes:        likes,
			Comments:     comments,
			Brand:        brand,
		})
		postsByID[inf.ID]++

		if g.r.Float64() >= cfg.OrderRate {
			continue
		}
		orders := g.between(1, max(1, int(float64(reach)*cfg.ConversionRate)))
		orders = min(orders, cfg.MaxOrdersPerPost)
		for range orders {
			tracking = append(tracking, model.TrackingEvent{
				Source:       platform,
				Campaign:     fmt.Sprintf("%s_Campaign_%d", brand, g.between(1, 10)),
				InfluencerID: inf.ID,
				UserID:       uint64(g.between(100_000, 999_999)),
				Product:      pick(g, products),
				Brand:        brand,
				Date:         date.AddDate(0, 0, g.between(0, 7)),
				Orders:       1,
				Revenue:      g.uniform(500, 5000),
			})
			ordersByID[inf.ID]++
		}
	}

	var payouts []model.PayoutTerm
	for _, inf := range influencers {
		term := model.PayoutTerm{InfluencerID: inf.ID, Basis: pick(g, []model.PayoutBasis{model.BasisPost, model.BasisOrder})}
		if term.Basis == model.BasisPost {
			term.Rate = g.uniform(1000, 10000)
			term.TotalPayout = term.Rate * float64(postsByID[inf.ID])
		} else {
			term.Rate = g.uniform(50, 200)
			term.Orders = ordersByID[inf.ID]
			term.TotalPayout = term.Rate * float64(term.Orders)
		}
		if term.TotalPayout > 0 {
			payouts = append(payouts, term)
		}
	}

	return New(influencers, posts, tracking, payouts)
}
