// Package metrics exposes process-wide scan counters through Prometheus.
// Everything is registered on the default registry; serve mode mounts
// promhttp on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsProcessed counts raw documents entering the pipeline.
	DocumentsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskscan_documents_processed_total",
		Help: "Raw documents classified by the pipeline.",
	})

	// DuplicatesFiltered counts documents dropped by deduplication.
	DuplicatesFiltered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskscan_duplicates_filtered_total",
		Help: "Documents removed as near-duplicates.",
	})

	// SourceFetches counts fetch attempts per source.
	SourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskscan_source_fetches_total",
		Help: "Feed source fetch attempts.",
	}, []string{"source"})

	// SourceFailures counts fetches that errored or timed out.
	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskscan_source_failures_total",
		Help: "Feed source fetches that failed or timed out.",
	}, []string{"source"})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "riskscan_scan_duration_seconds",
		Help:    "Duration of the classify/dedupe/aggregate stage.",
		Buckets: prometheus.DefBuckets,
	})

	lastScan = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "riskscan_last_scan_timestamp_seconds",
		Help: "Unix time of the last completed scan.",
	})
)

// ObserveScan records one completed pipeline run.
func ObserveScan(d time.Duration) {
	scanDuration.Observe(d.Seconds())
	lastScan.SetToCurrentTime()
}
