package dataset

import (
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/model"
	"slices"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Dataset 校验通过的四张只读表
type Dataset struct {
	influencers []model.Influencer
	posts       []model.Post
	tracking    []model.TrackingEvent
	payouts     []model.PayoutTerm
	byID        map[uint64]model.Influencer
	version     string
}

// New 校验并构造数据集，任何违反约束的行都会返回 ErrSchemaViolation
func New(
	influencers []model.Influencer,
	posts []model.Post,
	tracking []model.TrackingEvent,
	payouts []model.PayoutTerm,
) (*Dataset, error) {
	byID := make(map[uint64]model.Influencer, len(influencers))
	for i, inf := range influencers {
		if inf.ID == 0 {
			return nil, errors.Wrapf(ErrSchemaViolation, "influencer #%d has no id", i)
		}
		if _, dup := byID[inf.ID]; dup {
			return nil, errors.Wrapf(ErrSchemaViolation, "influencer id %d is duplicated", inf.ID)
		}
		if !inf.Category.Valid() || !inf.Platform.Valid() {
			return nil, errors.Wrapf(ErrSchemaViolation, "influencer %d has category %q platform %q", inf.ID, inf.Category, inf.Platform)
		}
		if inf.FollowerCount <= 0 {
			return nil, errors.Wrapf(ErrSchemaViolation, "influencer %d has follower count %d", inf.ID, inf.FollowerCount)
		}
		byID[inf.ID] = inf
	}

	for i, p := range posts {
		if _, ok := byID[p.InfluencerID]; !ok {
			return nil, errors.Wrapf(ErrSchemaViolation, "post #%d references unknown influencer %d", i, p.InfluencerID)
		}
		if !p.Platform.Valid() || !p.Brand.Valid() {
			return nil, errors.Wrapf(ErrSchemaViolation, "post #%d has platform %q brand %q", i, p.Platform, p.Brand)
		}
		if p.Reach < 0 || p.Likes < 0 || p.Comments < 0 || p.Likes > p.Reach || p.Comments > p.Likes {
			return nil, errors.Wrapf(ErrSchemaViolation, "post #%d has reach %d likes %d comments %d", i, p.Reach, p.Likes, p.Comments)
		}
	}

	for i, e := range tracking {
		if _, ok := byID[e.InfluencerID]; !ok {
			return nil, errors.Wrapf(ErrSchemaViolation, "tracking event #%d references unknown influencer %d", i, e.InfluencerID)
		}
		if !e.Source.Valid() || !e.Brand.Valid() {
			return nil, errors.Wrapf(ErrSchemaViolation, "tracking event #%d has source %q brand %q", i, e.Source, e.Brand)
		}
		if e.Orders <= 0 || e.Revenue <= 0 {
			return nil, errors.Wrapf(ErrSchemaViolation, "tracking event #%d has orders %d revenue %v", i, e.Orders, e.Revenue)
		}
	}

	seen := make(map[uint64]struct{}, len(payouts))
	for _, p := range payouts {
		if _, ok := byID[p.InfluencerID]; !ok {
			return nil, errors.Wrapf(ErrSchemaViolation, "payout references unknown influencer %d", p.InfluencerID)
		}
		if _, dup := seen[p.InfluencerID]; dup {
			return nil, errors.Wrapf(ErrSchemaViolation, "influencer %d has more than one payout term", p.InfluencerID)
		}
		if !p.Basis.Valid() || p.Rate <= 0 || p.TotalPayout <= 0 {
			return nil, errors.Wrapf(ErrSchemaViolation, "payout of influencer %d has basis %q rate %v total %v", p.InfluencerID, p.Basis, p.Rate, p.TotalPayout)
		}
		if p.Basis == model.BasisPost && p.Orders != 0 {
			return nil, errors.Wrapf(ErrSchemaViolation, "post-based payout of influencer %d carries %d orders", p.InfluencerID, p.Orders)
		}
		seen[p.InfluencerID] = struct{}{}
	}

	return &Dataset{
		influencers: slices.Clone(influencers),
		posts:       slices.Clone(posts),
		tracking:    slices.Clone(tracking),
		payouts:     slices.Clone(payouts),
		byID:        byID,
		version:     uuid.NewString(),
	}, nil
}

// Influencers 返回副本
func (d *Dataset) Influencers() []model.Influencer { return slices.Clone(d.influencers) }

// Posts 返回副本
func (d *Dataset) Posts() []model.Post { return slices.Clone(d.posts) }

// Tracking 返回副本
func (d *Dataset) Tracking() []model.TrackingEvent { return slices.Clone(d.tracking) }

// Payouts 返回副本
func (d *Dataset) Payouts() []model.PayoutTerm { return slices.Clone(d.payouts) }

// InfluencerByID 按 id 查找达人
func (d *Dataset) InfluencerByID(id uint64) (model.Influencer, bool) {
	inf, ok := d.byID[id]
	return inf, ok
}

// Tables 转换为指标引擎的输入
func (d *Dataset) Tables() attribution.Tables {
	return attribution.Tables{
		Influencers: d.Influencers(),
		Posts:       d.Posts(),
		Tracking:    d.Tracking(),
		Payouts:     d.Payouts(),
	}
}

// Version 数据集实例标识，用作缓存 key 的一部分
func (d *Dataset) Version() string {
	return d.version
}
