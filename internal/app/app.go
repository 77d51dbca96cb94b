// Package app wires configuration, feed sources, the scan pipeline and the
// report renderers into the two run modes: one-shot CLI scan and HTTP serve.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/config"
	"github.com/purnamedha/riskscan/internal/feeds"
	"github.com/purnamedha/riskscan/internal/logger"
	"github.com/purnamedha/riskscan/internal/report"
	"github.com/purnamedha/riskscan/internal/scan"
)

// App holds everything a scan invocation needs. The catalog and sources are
// built once; every Scan call is otherwise stateless.
type App struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	pipeline *scan.Pipeline
	feeds    *feeds.FeedsConfig

	mu          sync.RWMutex
	lastScanAt  time.Time
	lastScanLen int
}

// New loads the feeds config and assembles the application.
func New(cfg *config.Config) (*App, error) {
	fc, err := feeds.LoadFeedsConfig(cfg.FeedsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load feeds: %w", err)
	}

	cat := catalog.Default()
	return &App{
		cfg:      cfg,
		catalog:  cat,
		pipeline: scan.NewPipeline(cat),
		feeds:    fc,
	}, nil
}

// Scan fetches all sources concurrently, then runs the core pipeline over
// whatever the sources delivered. Partial source failure is the normal case
// and never surfaces as an error here.
func (a *App) Scan(ctx context.Context, days int) *scan.Result {
	cfg := *a.cfg
	cfg.Days = days

	sources := feeds.Build(&cfg, a.feeds)
	logger.Info("scan started", "sources", len(sources), "days", days)

	raw := feeds.FetchAll(ctx, sources, cfg.FetchConcurrency, cfg.FetchTimeout)
	logger.Info("fetch complete", "documents", len(raw))

	result := a.pipeline.Run(raw)
	result.Days = days
	logger.Info("scan complete", "scan_id", result.ScanID, "unique", result.Total, "raw", len(raw))

	a.mu.Lock()
	a.lastScanAt = time.Now().UTC()
	a.lastScanLen = result.Total
	a.mu.Unlock()

	return result
}

// Render serializes a result in the requested format.
func (a *App) Render(res *scan.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		return report.JSON(a.catalog, res)
	case "markdown", "md":
		return []byte(report.Markdown(a.catalog, res)), nil
	case "html":
		page, err := report.HTML(a.catalog, res)
		if err != nil {
			return nil, err
		}
		return []byte(page), nil
	case "text":
		return []byte(report.Text(a.catalog, res)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// RunOnce performs a single scan and writes the rendered report to the
// output path, or stdout when the path is empty.
func (a *App) RunOnce(ctx context.Context, days int, format, output string) error {
	res := a.Scan(ctx, days)

	out, err := a.Render(res, format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("report saved", "path", output, "format", format)
	return nil
}

// LastScan reports when the most recent scan finished and how many unique
// documents it produced. Zero time means no scan has run yet.
func (a *App) LastScan() (time.Time, int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastScanAt, a.lastScanLen
}
