package scan

import (
	"regexp"
	"strings"

	"github.com/purnamedha/riskscan/internal/metrics"
)

// similarityThreshold is the word-overlap ratio above which two titles are
// considered the same story. Strictly greater-than: a ratio of exactly 0.6
// keeps both documents.
const similarityThreshold = 0.6

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// normalizeTitle lower-cases a title and strips everything that is not a
// letter, digit or space.
func normalizeTitle(title string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(title), ""))
}

// titleWords returns the normalized title's word set.
func titleWords(title string) map[string]struct{} {
	words := strings.Fields(normalizeTitle(title))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// similar computes |intersection| / min(|a|, |b|) over the two word sets and
// compares it against the threshold. Empty sets are never similar.
func similar(a, b map[string]struct{}) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	overlap := 0
	for w := range a {
		if _, ok := b[w]; ok {
			overlap++
		}
	}
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	return float64(overlap)/float64(minLen) > similarityThreshold
}

// Deduplicate filters near-duplicate documents by pairwise title similarity,
// keeping the first occurrence of each cluster and preserving input order
// among survivors. O(n²) in the input size, which is fine for the tens to
// low hundreds of documents a scan produces.
func Deduplicate(docs []Document) []Document {
	seen := make([]map[string]struct{}, 0, len(docs))
	unique := make([]Document, 0, len(docs))

	for _, doc := range docs {
		words := titleWords(doc.Title)
		duplicate := false
		for _, prev := range seen {
			if similar(words, prev) {
				duplicate = true
				break
			}
		}
		if duplicate {
			metrics.DuplicatesFiltered.Inc()
			continue
		}
		seen = append(seen, words)
		unique = append(unique, doc)
	}
	return unique
}
