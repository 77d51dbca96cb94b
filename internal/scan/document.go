// Package scan implements the core pipeline: classification of raw documents,
// near-duplicate removal and count aggregation. Everything here is purely
// computational; fetching lives in internal/feeds and rendering in
// internal/report.
package scan

import (
	"github.com/purnamedha/riskscan/internal/classify"
)

// SummaryMaxChars caps document summaries. Anything longer is display noise.
const SummaryMaxChars = 300

// RawDocument is what a feed source hands the pipeline: text plus metadata,
// no classification yet. Published is YYYY-MM-DD, or "Unknown" when the
// source had no recoverable date.
type RawDocument struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

// CombinedText is the sole classification input: title and summary joined.
func (r RawDocument) CombinedText() string {
	return r.Title + " " + r.Summary
}

// Document is a fully classified record. It is built in one step and never
// mutated afterwards; deduplication drops whole documents, it does not edit
// them.
type Document struct {
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	URL        string   `json:"url"`
	Published  string   `json:"published"`
	Summary    string   `json:"summary"`
	Layers     []string `json:"layers"`
	Metrics    []string `json:"metrics"`
	Severity   string   `json:"severity"`
	Industry   string   `json:"industry"`
	AuditAngle string   `json:"audit_angle"`
}

// NewDocument assembles an immutable Document from a raw record and its
// classification.
func NewDocument(raw RawDocument, res classify.Result) Document {
	summary := raw.Summary
	if r := []rune(summary); len(r) > SummaryMaxChars {
		summary = string(r[:SummaryMaxChars])
	}
	return Document{
		Title:      raw.Title,
		Source:     raw.Source,
		URL:        raw.URL,
		Published:  raw.Published,
		Summary:    summary,
		Layers:     res.Layers,
		Metrics:    res.Metrics,
		Severity:   res.Severity,
		Industry:   res.Industry,
		AuditAngle: classify.AuditAngle(res),
	}
}
