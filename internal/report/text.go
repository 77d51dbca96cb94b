package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/purnamedha/riskscan/internal/catalog"
	"github.com/purnamedha/riskscan/internal/scan"
)

const titleColumnWidth = 60

// Text renders a compact console summary: severity counts and one aligned
// row per event. Columns are padded by display width, not byte length, so
// wide runes in titles do not break the layout.
func Text(cat *catalog.Catalog, res *scan.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "AI Risk Scanner — %s (last %d days)\n", res.ScanDate, res.Days)
	fmt.Fprintf(&b, "Events: %d", res.Total)
	for _, sev := range catalog.Severities {
		fmt.Fprintf(&b, "  %s %s %d", severityMarker(sev), sev, res.SeverityCounts[sev])
	}
	b.WriteString("\n\n")

	header := pad("TITLE", titleColumnWidth) + "  " + pad("SEVERITY", 8) + "  " + pad("INDUSTRY", 22) + "  SOURCE"
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(header)) + "\n")

	for _, doc := range res.Documents {
		title := runewidth.Truncate(doc.Title, titleColumnWidth, "…")
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			pad(title, titleColumnWidth),
			pad(doc.Severity, 8),
			pad(doc.Industry, 22),
			doc.Source)
	}

	if len(res.IndustryCounts) > 0 {
		b.WriteString("\nTop industries:")
		for _, c := range res.IndustryCounts {
			fmt.Fprintf(&b, " %s=%d", c.Code, c.Count)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
