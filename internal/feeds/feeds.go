// Package feeds implements the feed-source collaborators: RSS/Atom feeds, a
// query-driven news search and a JSON incident API. Sources are fetched
// concurrently with an individual timeout each; a source that fails or times
// out contributes zero documents and never aborts the run.
package feeds

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/purnamedha/riskscan/internal/config"
	"github.com/purnamedha/riskscan/internal/logger"
	"github.com/purnamedha/riskscan/internal/metrics"
	"github.com/purnamedha/riskscan/internal/scan"
)

const userAgent = "riskscan/1.0 (AI Risk Research; contact@purnamedha.ai)"

// Source produces raw documents for one upstream feed or API.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]scan.RawDocument, error)
}

// Feed is one named RSS/Atom feed from the YAML config.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FeedsConfig is the YAML layout of configs/feeds.yaml:
//
//	feeds:
//	  - name: TechCrunch AI
//	    url: https://...
//	queries:
//	  - AI failure disaster
type FeedsConfig struct {
	Feeds   []Feed   `yaml:"feeds"`
	Queries []string `yaml:"queries"`
}

// LoadFeedsConfig reads the feed and query lists from a YAML file.
func LoadFeedsConfig(path string) (*FeedsConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds config: %w", err)
	}
	defer f.Close()

	var fc FeedsConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode feeds config: %w", err)
	}
	return &fc, nil
}

// Build assembles all configured sources: one per RSS feed, one per search
// query (sharing a pacing limiter so we do not hammer the search endpoint),
// and the incident API.
func Build(cfg *config.Config, fc *FeedsConfig) []Source {
	sources := make([]Source, 0, len(fc.Feeds)+len(fc.Queries)+1)
	for _, f := range fc.Feeds {
		sources = append(sources, NewRSSSource(f.Name, f.URL, cfg.Days, cfg.PerFeedLimit))
	}

	var limiter *rate.Limiter
	if cfg.FetchPacing > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.FetchPacing), 1)
	}
	for _, q := range fc.Queries {
		sources = append(sources, NewSearchSource(q, cfg.Days, cfg.PerQueryLimit, limiter))
	}

	sources = append(sources, NewIncidentSource(cfg.IncidentBaseURL, cfg.IncidentLimit))
	return sources
}

// FetchAll runs every source through a bounded worker pool. Each fetch gets
// its own timeout; failures are logged and counted, then dropped. Results
// keep source order so repeated runs over identical inputs are stable.
func FetchAll(ctx context.Context, sources []Source, concurrency int, timeout time.Duration) []scan.RawDocument {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([][]scan.RawDocument, len(sources))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				src := sources[i]
				metrics.SourceFetches.WithLabelValues(src.Name()).Inc()

				fetchCtx, cancel := context.WithTimeout(ctx, timeout)
				docs, err := src.Fetch(fetchCtx)
				cancel()

				if err != nil {
					metrics.SourceFailures.WithLabelValues(src.Name()).Inc()
					logger.Warn("source fetch failed", "source", src.Name(), "error", err)
					continue
				}
				logger.Info("source fetched", "source", src.Name(), "documents", len(docs))
				results[i] = docs
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []scan.RawDocument
	for _, docs := range results {
		all = append(all, docs...)
	}
	return all
}
