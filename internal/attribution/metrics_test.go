package attribution

import (
	"CampaignLens/internal/model"
	"errors"
	"testing"
)

func TestComputeMetricsScenario(t *testing.T) {
	t.Parallel()
	tracking := []model.TrackingEvent{
		{InfluencerID: 1, Orders: 1, Revenue: 1000},
		{InfluencerID: 1, Orders: 1, Revenue: 2000},
		{InfluencerID: 1, Orders: 1, Revenue: 500},
	}
	payouts := []model.PayoutTerm{{InfluencerID: 1, Basis: model.BasisPost, Rate: 1000, TotalPayout: 1000}}

	table, err := ComputeMetrics(tracking, payouts)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	m, ok := table[1]
	if !ok {
		t.Fatalf("missing influencer 1: %+v", table)
	}
	if !approx(m.Revenue, 3500) || m.Orders != 3 {
		t.Fatalf("unexpected totals: %+v", m)
	}
	if !approx(m.ROAS, 3.5) || !approx(m.IncrementalRevenue, 2800) || !approx(m.IncrementalROAS, 2.8) {
		t.Fatalf("unexpected ratios: %+v", m)
	}
	if !m.HasPayout() || *m.TotalPayout != 1000 {
		t.Fatalf("unexpected payout: %+v", m.TotalPayout)
	}
}

func TestComputeMetricsMissingPayout(t *testing.T) {
	t.Parallel()
	tracking := []model.TrackingEvent{
		{InfluencerID: 2, Orders: 1, Revenue: 400},
		{InfluencerID: 2, Orders: 1, Revenue: 600},
	}
	table, err := ComputeMetrics(tracking, nil)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	m := table[2]
	if m.HasPayout() {
		t.Fatalf("expected unknown spend, got %v", *m.TotalPayout)
	}
	if m.ROAS != 0 || m.IncrementalROAS != 0 {
		t.Fatalf("expected zero roas: %+v", m)
	}
	if !approx(m.IncrementalRevenue, 800) {
		t.Fatalf("unexpected incremental revenue: %v", m.IncrementalRevenue)
	}
}

func TestComputeMetricsDuplicatePayout(t *testing.T) {
	t.Parallel()
	payouts := []model.PayoutTerm{
		{InfluencerID: 7, TotalPayout: 10},
		{InfluencerID: 7, TotalPayout: 20},
	}
	_, err := ComputeMetrics(nil, payouts)
	if !errors.Is(err, ErrDuplicatePayout) {
		t.Fatalf("expected duplicate payout error, got %v", err)
	}
}

func TestComputeMetricsProperties(t *testing.T) {
	t.Parallel()
	tables := sampleTables()
	table, err := ComputeMetrics(tables.Tracking, tables.Payouts)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	payoutByID := make(map[uint64]float64)
	for _, p := range tables.Payouts {
		payoutByID[p.InfluencerID] = p.TotalPayout
	}

	for id, m := range table {
		if !approx(m.IncrementalRevenue, IncrementalFactor*m.Revenue) {
			t.Fatalf("influencer %d: incremental revenue %v != 0.8 * %v", id, m.IncrementalRevenue, m.Revenue)
		}
		total, ok := payoutByID[id]
		if !ok {
			if m.ROAS != 0 || m.IncrementalROAS != 0 {
				t.Fatalf("influencer %d without payout has roas %+v", id, m)
			}
			continue
		}
		if !approx(m.ROAS, m.Revenue/total) {
			t.Fatalf("influencer %d: roas %v != %v", id, m.ROAS, m.Revenue/total)
		}
	}
}

func TestComputeMetricsSkipsPayoutOnlyInfluencers(t *testing.T) {
	t.Parallel()
	payouts := []model.PayoutTerm{{InfluencerID: 9, TotalPayout: 500}}
	table, err := ComputeMetrics([]model.TrackingEvent{{InfluencerID: 1, Orders: 1, Revenue: 10}}, payouts)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	if _, ok := table[9]; ok {
		t.Fatalf("influencer without tracking should not appear: %+v", table)
	}
	if len(table) != 1 {
		t.Fatalf("unexpected table size: %d", len(table))
	}
}

func TestMetricsTableRowsSorted(t *testing.T) {
	t.Parallel()
	table := MetricsTable{
		5: {InfluencerID: 5},
		2: {InfluencerID: 2},
		9: {InfluencerID: 9},
	}
	rows := table.Rows()
	for i := 1; i < len(rows); i++ {
		if rows[i-1].InfluencerID >= rows[i].InfluencerID {
			t.Fatalf("rows not ascending: %+v", rows)
		}
	}
}
