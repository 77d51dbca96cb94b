package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/config"
	"github.com/purnamedha/riskscan/internal/logger"
	"github.com/purnamedha/riskscan/internal/scan"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testApp(t *testing.T) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feeds.yaml")
	if err := os.WriteFile(path, []byte("feeds: []\nqueries: []\n"), 0o644); err != nil {
		t.Fatalf("write feeds config: %v", err)
	}

	cfg := &config.Config{
		Days:             7,
		FeedsConfigPath:  path,
		FetchTimeout:     time.Second,
		FetchConcurrency: 1,
		IncidentBaseURL:  "http://127.0.0.1:1", // nothing listens here
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewMissingFeedsConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Days: 7, FeedsConfigPath: "does/not/exist.yaml"}
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for missing feeds config")
	}
}

func TestRenderFormats(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	res := &scan.Result{
		ScanID:         "01JXAMPLE0000000000000000Z",
		ScanDate:       "2026-08-29 10:00 UTC",
		Days:           7,
		SeverityCounts: map[string]int{},
		LayerCounts:    map[string]int{},
	}

	for _, format := range []string{"json", "markdown", "md", "html", "text"} {
		out, err := a.Render(res, format)
		if err != nil {
			t.Errorf("Render(%q): %v", format, err)
		}
		if len(out) == 0 {
			t.Errorf("Render(%q) produced empty output", format)
		}
	}

	if _, err := a.Render(res, "pdf"); err == nil {
		t.Errorf("unknown format must be rejected")
	}

	md, _ := a.Render(res, "md")
	if !strings.Contains(string(md), "# AI Risk Scanner Report") {
		t.Errorf("md alias must render markdown")
	}
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("status field = %v", payload["status"])
	}
	// No scan has run yet, so last_scan must be absent.
	if _, ok := payload["last_scan"]; ok {
		t.Errorf("last_scan must be omitted before the first scan")
	}
}

func TestScanHandlerRejectsBadDays(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	for _, days := range []string{"abc", "0", "-5"} {
		resp, err := http.Get(server.URL + "/api/scan?days=" + days)
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("days=%q: status = %d, want 400", days, resp.StatusCode)
		}
	}
}

func TestScanHandlerServesJSON(t *testing.T) {
	t.Parallel()

	// An app with no feeds and no queries only carries the incident API
	// source, which fails fast against an unreachable override and leaves an
	// empty but well-formed result.
	a := testApp(t)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/scan?days=3")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "s-maxage") {
		t.Errorf("Cache-Control = %q", cc)
	}

	var result struct {
		ScanID string `json:"scan_id"`
		Days   int    `json:"days"`
		Total  int    `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Days != 3 {
		t.Errorf("days = %d, want 3", result.Days)
	}
	if result.ScanID == "" {
		t.Errorf("scan_id must be set")
	}
}

func TestRunOnceWritesFile(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	out := filepath.Join(t.TempDir(), "report.md")
	if err := a.RunOnce(context.Background(), 1, "markdown", out); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "# AI Risk Scanner Report") {
		t.Errorf("report content missing header")
	}

	lastAt, _ := a.LastScan()
	if lastAt.IsZero() {
		t.Errorf("LastScan must record the run")
	}
}

func TestSeverityOrderInCatalog(t *testing.T) {
	t.Parallel()

	// The handlers and renderers assume the canonical tier order.
	want := []string{
		catalog.SeverityCritical, catalog.SeverityHigh,
		catalog.SeverityMedium, catalog.SeverityLow,
	}
	for i, sev := range catalog.Severities {
		if sev != want[i] {
			t.Fatalf("severity order changed: %v", catalog.Severities)
		}
	}
}
