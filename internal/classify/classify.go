// Package classify maps document text onto catalog categories. All functions
// are pure: they take the combined title+summary text and return labels,
// never touching network or shared state.
package classify

import (
	"strings"

	"github.com/purnamedha/riskscan/internal/catalog"
)

// Result holds one document's classification. Layers and Metrics are never
// empty; Severity and Industry always carry exactly one value.
type Result struct {
	Layers   []string
	Metrics  []string
	Severity string
	Industry string
}

// Classify runs all four classifiers over the combined text.
func Classify(cat *catalog.Catalog, combined string) Result {
	text := strings.ToLower(combined)
	return Result{
		Layers:   matchCategories(cat.Layers, text, catalog.DefaultLayer),
		Metrics:  matchCategories(cat.Metrics, text, catalog.DefaultMetric),
		Severity: estimateSeverity(cat, text),
		Industry: detectIndustry(cat, text),
	}
}

// matchCategories collects every category with at least one matching pattern,
// in catalog order. Within a category the first hit short-circuits; the
// categories themselves are all evaluated independently.
func matchCategories(categories []catalog.Category, text, fallback string) []string {
	var matched []string
	for _, c := range categories {
		if c.Matches(text) {
			matched = append(matched, c.Code)
		}
	}
	if len(matched) == 0 {
		return []string{fallback}
	}
	return matched
}

// estimateSeverity checks tiers strictly in rank order and returns on the
// first tier that matches. Tiers are mutually exclusive by construction: a
// text matching both Critical and Medium signals is Critical.
func estimateSeverity(cat *catalog.Catalog, text string) string {
	for _, tier := range cat.Severities {
		if tier.Matches(text) {
			return tier.Code
		}
	}
	return catalog.SeverityLow
}

// detectIndustry returns the first industry in catalog order with a matching
// pattern. Declaration order is the tie-break: a text mentioning both
// "hospital" and "bank" lands in whichever sector is declared earlier.
func detectIndustry(cat *catalog.Catalog, text string) string {
	for _, ind := range cat.Industries {
		if ind.Matches(text) {
			return ind.Code
		}
	}
	return catalog.DefaultIndustry
}
