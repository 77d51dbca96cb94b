package scan

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/purnamedha/riskscan/internal/catalog"
)

// CategoryCount is one entry of an ordered count listing.
type CategoryCount struct {
	Code  string
	Count int
}

// CountList preserves category order, which encoding/json would lose with a
// plain map. Industry and metric counts are ordered by descending count with
// discovery order breaking ties.
type CountList []CategoryCount

// Get returns the count for a code, zero if absent.
func (cl CountList) Get(code string) int {
	for _, c := range cl {
		if c.Code == code {
			return c.Count
		}
	}
	return 0
}

// MarshalJSON renders the list as a JSON object in list order.
func (cl CountList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range cl {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the aggregate snapshot of one scan run. It is created once per
// invocation from the deduplicated document set and never mutated.
type Result struct {
	ScanID         string         `json:"scan_id"`
	ScanDate       string         `json:"scan_date"`
	Days           int            `json:"days"`
	Total          int            `json:"total"`
	SeverityCounts map[string]int `json:"severity_counts"`
	LayerCounts    map[string]int `json:"layer_counts"`
	IndustryCounts CountList      `json:"industry_counts"`
	MetricCounts   CountList      `json:"metric_counts"`
	Documents      []Document     `json:"events"`
}

// Aggregate reduces a deduplicated document set to count summaries and the
// severity-ordered document list. Severity and layer counts are pre-seeded
// so absent tiers and layers still show up as zero; industries and metrics
// only list categories that occurred.
func Aggregate(cat *catalog.Catalog, docs []Document) *Result {
	severityCounts := make(map[string]int, len(catalog.Severities))
	for _, s := range catalog.Severities {
		severityCounts[s] = 0
	}
	layerCounts := make(map[string]int, len(cat.Layers))
	for _, l := range cat.Layers {
		layerCounts[l.Code] = 0
	}

	var industryCounts, metricCounts CountList
	for _, doc := range docs {
		severityCounts[doc.Severity]++
		for _, l := range doc.Layers {
			layerCounts[l]++
		}
		industryCounts = bump(industryCounts, doc.Industry)
		for _, m := range doc.Metrics {
			metricCounts = bump(metricCounts, m)
		}
	}

	sortDescending(industryCounts)
	sortDescending(metricCounts)

	ordered := make([]Document, len(docs))
	copy(ordered, docs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return catalog.SeverityRank(ordered[i].Severity) < catalog.SeverityRank(ordered[j].Severity)
	})

	return &Result{
		Total:          len(ordered),
		SeverityCounts: severityCounts,
		LayerCounts:    layerCounts,
		IndustryCounts: industryCounts,
		MetricCounts:   metricCounts,
		Documents:      ordered,
	}
}

// bump increments the count for a code, appending it in discovery order on
// first sight.
func bump(cl CountList, code string) CountList {
	for i := range cl {
		if cl[i].Code == code {
			cl[i].Count++
			return cl
		}
	}
	return append(cl, CategoryCount{Code: code, Count: 1})
}

func sortDescending(cl CountList) {
	sort.SliceStable(cl, func(i, j int) bool {
		return cl[i].Count > cl[j].Count
	})
}
