// Package config loads runtime settings from the environment with sane
// defaults. CLI flags in cmd/riskscan override the scan window and output
// options after Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// MaxDays caps the scan look-back window.
const MaxDays = 90

type Config struct {
	// Scan settings
	Days            int           // look-back window for feed entries
	FeedsConfigPath string        // YAML file with feeds and search queries
	PerFeedLimit    int           // entries inspected per RSS feed
	PerQueryLimit   int           // entries inspected per news search query
	IncidentLimit   int           // incidents requested from the incident API
	IncidentBaseURL string        // incident API base, empty for the public one

	// Fetch settings
	FetchTimeout     time.Duration // per-source fetch budget
	FetchConcurrency int           // parallel source fetches
	FetchPacing      time.Duration // minimum spacing between search requests

	// Server settings
	Addr string

	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Days:             7,
		FeedsConfigPath:  "configs/feeds.yaml",
		PerFeedLimit:     15,
		PerQueryLimit:    10,
		IncidentLimit:    20,
		FetchTimeout:     8 * time.Second,
		FetchConcurrency: 4,
		FetchPacing:      500 * time.Millisecond,
		Addr:             ":8080",
	}

	if path := os.Getenv("FEEDS_CONFIG_PATH"); path != "" {
		cfg.FeedsConfigPath = path
	}
	cfg.Days = getEnvIntOrDefault("SCAN_DAYS", cfg.Days)
	cfg.PerFeedLimit = getEnvIntOrDefault("PER_FEED_LIMIT", cfg.PerFeedLimit)
	cfg.PerQueryLimit = getEnvIntOrDefault("PER_QUERY_LIMIT", cfg.PerQueryLimit)
	cfg.IncidentLimit = getEnvIntOrDefault("INCIDENT_LIMIT", cfg.IncidentLimit)
	cfg.FetchConcurrency = getEnvIntOrDefault("FETCH_CONCURRENCY", cfg.FetchConcurrency)

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("FETCH_PACING_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.FetchPacing = time.Duration(val) * time.Millisecond
		}
	}
	if base := os.Getenv("INCIDENT_BASE_URL"); base != "" {
		cfg.IncidentBaseURL = base
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("scan window must be at least 1 day, got %d", c.Days)
	}
	if c.Days > MaxDays {
		c.Days = MaxDays
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("fetch concurrency must be positive, got %d", c.FetchConcurrency)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	return nil
}
