package feeds

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts the visible text from an HTML fragment, collapses
// whitespace and caps the result at max runes. Feed summaries routinely
// arrive as markup; the classifier wants plain text.
func StripHTML(fragment string, max int) string {
	text := fragment
	if strings.ContainsAny(fragment, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment)); err == nil {
			text = doc.Text()
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); max > 0 && len(r) > max {
		text = string(r[:max])
	}
	return strings.TrimSpace(text)
}
