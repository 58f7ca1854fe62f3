package service

import (
	"CampaignLens/internal/attribution"
	"CampaignLens/internal/model"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeSink struct {
	objects map[string][]byte
	err     error
}

func (f *fakeSink) Upload(_ context.Context, objectName string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if contentType != "text/csv" {
		return "", errors.New("unexpected content type " + contentType)
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = data
	return "https://minio.local/" + objectName + "?sig=1", nil
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return records
}

func newExportService(t *testing.T, sink ArchiveSink) ExportService {
	t.Helper()
	return NewExportService(NewDashboardService(newTestDataset(t), nil, time.Minute), sink)
}

func TestExportMetrics(t *testing.T) {
	t.Parallel()
	svc := newExportService(t, nil)
	file, err := svc.Export(context.Background(), "metrics", attribution.Filter{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if file.Name != "metrics_summary.csv" || file.Rows != 2 {
		t.Fatalf("unexpected file: %s rows=%d", file.Name, file.Rows)
	}
	records := readCSV(t, file.Data)
	if strings.Join(records[0], ",") != strings.Join(metricsHeader, ",") {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "1" || records[1][1] != "FitnessFrida" || records[1][6] != "1000" || records[1][7] != "3" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][6] != "" || records[2][7] != "0" {
		t.Fatalf("unknown spend should export an empty payout: %v", records[2])
	}
}

func TestExportMatchesFilter(t *testing.T) {
	t.Parallel()
	svc := newExportService(t, nil)
	hk := model.BrandHKVitals
	f := attribution.Filter{Brand: &hk}

	posts, err := svc.Export(context.Background(), "posts", f)
	if err != nil {
		t.Fatalf("export posts: %v", err)
	}
	if posts.Name != "posts_data.csv" || posts.Rows != 2 {
		t.Fatalf("unexpected posts export: %s rows=%d", posts.Name, posts.Rows)
	}

	revenue, err := svc.Export(context.Background(), "revenue", f)
	if err != nil {
		t.Fatalf("export revenue: %v", err)
	}
	records := readCSV(t, revenue.Data)
	if revenue.Name != "revenue_data.csv" || len(records) != 3 {
		t.Fatalf("unexpected revenue export: %s rows=%d", revenue.Name, len(records))
	}
	for _, r := range records[1:] {
		if r[6] != "HKVitals" {
			t.Fatalf("row outside filter: %v", r)
		}
	}
	if records[1][7] != "2025-05-03 10:00:00" {
		t.Fatalf("unexpected date format: %s", records[1][7])
	}
}

func TestExportUnknownKind(t *testing.T) {
	t.Parallel()
	svc := newExportService(t, nil)
	if _, err := svc.Export(context.Background(), "users", attribution.Filter{}); !errors.Is(err, ErrExportKindInvalid) {
		t.Fatalf("expected invalid kind, got %v", err)
	}
}

func TestArchive(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	svc := newExportService(t, sink)
	res, err := svc.Archive(context.Background(), "revenue", attribution.Filter{})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !strings.HasPrefix(res.ObjectName, "exports/") || !strings.HasSuffix(res.ObjectName, "-revenue_data.csv") {
		t.Fatalf("unexpected object name: %s", res.ObjectName)
	}
	if res.Rows != 3 || !strings.Contains(res.URL, res.ObjectName) {
		t.Fatalf("unexpected archive result: %+v", res)
	}
	if _, ok := sink.objects[res.ObjectName]; !ok {
		t.Fatalf("object not uploaded")
	}
}

func TestArchiveDisabled(t *testing.T) {
	t.Parallel()
	svc := newExportService(t, nil)
	if _, err := svc.Archive(context.Background(), "posts", attribution.Filter{}); !errors.Is(err, ErrExportSinkDisabled) {
		t.Fatalf("expected disabled sink, got %v", err)
	}
}

func TestArchiveUploadFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("bucket unreachable")
	svc := newExportService(t, &fakeSink{err: boom})
	if _, err := svc.Archive(context.Background(), "posts", attribution.Filter{}); !errors.Is(err, boom) {
		t.Fatalf("expected upload error, got %v", err)
	}
}
