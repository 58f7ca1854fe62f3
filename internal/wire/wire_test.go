package wire

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/dataset"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestFixtureConfig(t *testing.T) {
	t.Parallel()
	res, err := FixtureConfig(config.FixtureConfig{Seed: 9, PostCount: 10, AnchorDate: "2025-06-30"})
	if err != nil {
		t.Fatalf("fixture config: %v", err)
	}
	if res.Seed != 9 || res.PostCount != 10 || res.Anchor.Day() != 30 {
		t.Fatalf("unexpected fixture config: %+v", res)
	}

	res, err = FixtureConfig(config.FixtureConfig{})
	if err != nil || !res.Anchor.IsZero() {
		t.Fatalf("empty anchor should stay zero: %+v %v", res, err)
	}

	if _, err = FixtureConfig(config.FixtureConfig{AnchorDate: "yesterday"}); err == nil {
		t.Fatalf("expected error for bad anchor")
	}
}

func TestBuildApplicationWithoutBackends(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixture := dataset.DefaultFixtureConfig()
	fixture.Anchor = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.Synthesize(fixture)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	app := BuildApplication(ds, &config.Config{Cron: config.CronConfig{WarmSpec: "@hourly"}}, false, false)
	if err = app.CronMgr.RegisterJobs(); err != nil {
		t.Fatalf("register jobs: %v", err)
	}

	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}
