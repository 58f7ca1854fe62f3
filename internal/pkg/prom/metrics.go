package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaignlens_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaignlens_http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SnapshotBuildSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaignlens_snapshot_build_seconds",
			Help:    "Time spent filtering and aggregating one dashboard snapshot",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
	)

	SnapshotCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaignlens_snapshot_cache_total",
			Help: "Snapshot cache lookups by view and result",
		},
		[]string{"view", "result"},
	)

	ExportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaignlens_export_rows_total",
			Help: "Rows written to CSV exports",
		},
		[]string{"kind"},
	)
)
