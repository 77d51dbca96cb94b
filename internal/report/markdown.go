// Package report renders a scan result for human and machine consumers:
// JSON, Markdown, a standalone HTML dashboard and an aligned console table.
// It only reads the result; all computation happens in internal/scan.
package report

import (
	"fmt"
	"strings"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/scan"
)

var severityMarkers = map[string]string{
	catalog.SeverityCritical: "🔴",
	catalog.SeverityHigh:     "🟠",
	catalog.SeverityMedium:   "🟡",
	catalog.SeverityLow:      "🟢",
}

func severityMarker(severity string) string {
	if m, ok := severityMarkers[severity]; ok {
		return m
	}
	return "⚪"
}

// Markdown renders the full scan report as a Markdown document.
func Markdown(cat *catalog.Catalog, res *scan.Result) string {
	var b strings.Builder

	b.WriteString("# AI Risk Scanner Report\n")
	fmt.Fprintf(&b, "**Scan Date:** %s\n", res.ScanDate)
	fmt.Fprintf(&b, "**Scan ID:** %s\n", res.ScanID)
	fmt.Fprintf(&b, "**Window:** last %d days\n", res.Days)
	fmt.Fprintf(&b, "**Events Found:** %d\n\n---\n\n", res.Total)

	b.WriteString("## Severity Summary\n")
	for _, sev := range catalog.Severities {
		if count := res.SeverityCounts[sev]; count > 0 {
			fmt.Fprintf(&b, "- %s **%s:** %d events\n", severityMarker(sev), sev, count)
		}
	}
	b.WriteString("\n## Layer Distribution\n")
	for _, layer := range cat.Layers {
		if count := res.LayerCounts[layer.Code]; count > 0 {
			fmt.Fprintf(&b, "- **%s (%s):** %d events\n", layer.Code, layer.Name, count)
		}
	}

	b.WriteString("\n---\n\n## Events\n\n")
	for i, doc := range res.Documents {
		fmt.Fprintf(&b, "### %d. %s %s\n\n", i+1, severityMarker(doc.Severity), doc.Title)
		fmt.Fprintf(&b, "**Source:** %s | **Date:** %s | **Industry:** %s\n", doc.Source, doc.Published, doc.Industry)
		fmt.Fprintf(&b, "**Layers:** %s\n", codeTags(doc.Layers))
		fmt.Fprintf(&b, "**Key Metrics:** %s\n", codeTags(doc.Metrics))
		fmt.Fprintf(&b, "**Severity:** %s\n", doc.Severity)
		if doc.URL != "" {
			fmt.Fprintf(&b, "**URL:** %s\n", doc.URL)
		}
		if doc.Summary != "" {
			fmt.Fprintf(&b, "\n> %s\n", doc.Summary)
		}
		fmt.Fprintf(&b, "\n**Audit Angle:** %s\n\n---\n\n", doc.AuditAngle)
	}

	b.WriteString("*Generated by riskscan — Purna Medha LLP*\n")
	return b.String()
}

func codeTags(codes []string) string {
	tags := make([]string, len(codes))
	for i, c := range codes {
		tags[i] = "`" + c + "`"
	}
	return strings.Join(tags, " · ")
}
