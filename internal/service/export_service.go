package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/prom"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ArchiveSink 导出文件的对象存储
type ArchiveSink interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// ExportFile 一次导出的 CSV 内容
type ExportFile struct {
	Name string
	Rows int
	Data []byte
}

type ExportService interface {
	// Export 生成 posts / revenue / metrics 的 CSV
	Export(ctx context.Context, kind string, f attribution.Filter) (*ExportFile, error)
	// Archive 导出并上传到对象存储，返回临时下载链接
	Archive(ctx context.Context, kind string, f attribution.Filter) (*dto.ArchiveDTO, error)
}

type exportServiceImpl struct {
	dashboardSvc DashboardService
	sink         ArchiveSink
}

// NewExportService sink 为 nil 时归档不可用
func NewExportService(dashboardSvc DashboardService, sink ArchiveSink) ExportService {
	return &exportServiceImpl{
		dashboardSvc: dashboardSvc,
		sink:         sink,
	}
}

var (
	postsHeader   = []string{"influencer_id", "name", "platform", "date", "url", "caption", "reach", "likes", "comments", "brand", "engagement_rate"}
	revenueHeader = []string{"source", "campaign", "influencer_id", "name", "user_id", "product", "brand", "date", "orders", "revenue"}
	metricsHeader = []string{"influencer_id", "name", "category", "platform", "revenue", "orders", "total_payout", "roas", "incremental_revenue", "incremental_roas"}
)

func (s *exportServiceImpl) Export(ctx context.Context, kind string, f attribution.Filter) (*ExportFile, error) {
	var (
		name    string
		records [][]string
	)

	switch kind {
	case consts.ExportKindPosts:
		rows, err := s.dashboardSvc.GetPosts(ctx, f)
		if err != nil {
			return nil, err
		}
		name = "posts_data.csv"
		records = append(records, postsHeader)
		for _, r := range rows {
			records = append(records, []string{
				u64(r.InfluencerID), r.Name, string(r.Platform), r.Date.Format(time.DateTime), r.URL, r.Caption,
				i64(r.Reach), i64(r.Likes), i64(r.Comments), string(r.Brand), f64(r.EngagementRate),
			})
		}
	case consts.ExportKindRevenue:
		rows, err := s.dashboardSvc.GetRevenue(ctx, f)
		if err != nil {
			return nil, err
		}
		name = "revenue_data.csv"
		records = append(records, revenueHeader)
		for _, r := range rows {
			records = append(records, []string{
				string(r.Source), r.Campaign, u64(r.InfluencerID), r.Name, u64(r.UserID), r.Product,
				string(r.Brand), r.Date.Format(time.DateTime), strconv.Itoa(r.Orders), f64(r.Revenue),
			})
		}
	case consts.ExportKindMetrics:
		rows, err := s.dashboardSvc.GetInfluencerMetrics(ctx, f)
		if err != nil {
			return nil, err
		}
		name = "metrics_summary.csv"
		records = append(records, metricsHeader)
		for _, r := range rows {
			payout := ""
			if r.TotalPayout != nil {
				payout = f64(*r.TotalPayout)
			}
			records = append(records, []string{
				u64(r.InfluencerID), r.Name, string(r.Category), string(r.Platform), f64(r.Revenue),
				strconv.Itoa(r.Orders), payout, f64(r.ROAS), f64(r.IncrementalRevenue), f64(r.IncrementalROAS),
			})
		}
	default:
		return nil, ErrExportKindInvalid
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	rows := len(records) - 1
	prom.ExportRowsTotal.WithLabelValues(kind).Add(float64(rows))
	return &ExportFile{Name: name, Rows: rows, Data: buf.Bytes()}, nil
}

func (s *exportServiceImpl) Archive(ctx context.Context, kind string, f attribution.Filter) (*dto.ArchiveDTO, error) {
	if s.sink == nil {
		return nil, ErrExportSinkDisabled
	}
	file, err := s.Export(ctx, kind, f)
	if err != nil {
		return nil, err
	}

	objectName := consts.ExportObjectPrefix + time.Now().Format(time.DateOnly) + "/" + uuid.NewString() + "-" + file.Name
	url, err := s.sink.Upload(ctx, objectName, file.Data, consts.CSVContentType)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "export archived", "object", objectName, "rows", file.Rows)
	return &dto.ArchiveDTO{ObjectName: objectName, URL: url, Rows: file.Rows}, nil
}

func u64(v uint64) string { return strconv.FormatUint(v, 10) }

func i64(v int64) string { return strconv.FormatInt(v, 10) }

func f64(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
