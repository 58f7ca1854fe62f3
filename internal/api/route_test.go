package api

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/api/handler"
	"CampaignLens/internal/dataset"
	"CampaignLens/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixture := dataset.DefaultFixtureConfig()
	fixture.Anchor = time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	fixture.PostCount = 40
	ds, err := dataset.Synthesize(fixture)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	dashboardSvc := service.NewDashboardService(ds, nil, time.Minute)
	group := &HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		ExportHandler:    handler.NewExportHandler(service.NewExportService(dashboardSvc, nil)),
	}
	return SetupRouter(group, &config.Config{})
}

func doGet(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var out dto.Response
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v body=%s", err, rr.Body.String())
		}
	}
	return rr, out
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	rr, out := doGet(t, r, "/api/ping")
	if rr.Code != http.StatusOK || out.Message != "pong" {
		t.Fatalf("unexpected ping: %d %+v", rr.Code, out)
	}
	if rr.Header().Get("X-Trace-ID") == "" {
		t.Fatalf("missing trace header")
	}
}

func TestDashboardEndpoints(t *testing.T) {
	r := newTestRouter(t)
	targets := []string{
		"/api/dashboard/filters",
		"/api/dashboard/overview",
		"/api/dashboard/overview?brand=All&platform=Instagram",
		"/api/dashboard/influencers?category=Yoga",
		"/api/dashboard/insights?date_from=2025-06-01&date_to=2025-06-30",
		"/api/dashboard/top?n=3",
		"/api/dashboard/posts?brand=Gritzo",
		"/api/dashboard/revenue",
		"/api/dashboard/payouts",
	}
	for _, target := range targets {
		rr, out := doGet(t, r, target)
		if rr.Code != http.StatusOK || out.Code != 200 {
			t.Fatalf("%s: status=%d code=%d msg=%s", target, rr.Code, out.Code, out.Message)
		}
	}
}

func TestInsightsNoDataIsNotAnError(t *testing.T) {
	r := newTestRouter(t)
	_, out := doGet(t, r, "/api/dashboard/insights?date_from=2030-01-01&date_to=2030-01-31")
	if out.Code != 200 {
		t.Fatalf("unexpected code: %d %s", out.Code, out.Message)
	}
	data, _ := json.Marshal(out.Data)
	var insights dto.InsightsDTO
	if err := json.Unmarshal(data, &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if !insights.NoData {
		t.Fatalf("expected no_data flag: %s", data)
	}
}

func TestInvalidFilterIsBadRequest(t *testing.T) {
	r := newTestRouter(t)
	targets := []string{
		"/api/dashboard/overview?brand=Nike",
		"/api/dashboard/posts?platform=TikTok",
		"/api/dashboard/revenue?date_from=2025-02-30&date_to=2025-03-01",
		"/api/dashboard/top?n=abc",
		"/api/dashboard/top?n=500",
	}
	for _, target := range targets {
		rr, out := doGet(t, r, target)
		if rr.Code != http.StatusOK || out.Code != 400 {
			t.Fatalf("%s: status=%d code=%d msg=%s", target, rr.Code, out.Code, out.Message)
		}
	}
}

func TestExportDownload(t *testing.T) {
	r := newTestRouter(t)
	rr, _ := doGet(t, r, "/api/export/metrics?brand=HKVitals")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "metrics_summary.csv") {
		t.Fatalf("unexpected disposition: %s", cd)
	}
	if !strings.HasPrefix(rr.Body.String(), "influencer_id,name,category,platform") {
		t.Fatalf("unexpected csv: %s", rr.Body.String())
	}

	_, out := doGet(t, r, "/api/export/users")
	if out.Code != 400 {
		t.Fatalf("unknown export kind: code=%d", out.Code)
	}
}

func TestArchiveDisabled(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/export/posts/archive", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var out dto.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Code != service.ServiceUnavailable {
		t.Fatalf("expected 503 business code, got %d", out.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doGet(t, r, "/api/ping")
	rr, _ := doGet(t, r, "/metrics")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "campaignlens_http_requests_total") {
		t.Fatalf("metrics not exposed: %d", rr.Code)
	}
}
