package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/purnamedha/riskscan/internal/scan"
)

// aiPattern confirms a story is about AI at all; disasterPattern confirms it
// is about something going wrong. Curated feeds carry plenty of launch and
// funding news, so both must hit before an entry enters the pipeline.
var aiPattern = regexp.MustCompile(
	`(?i)\b(ai|artificial\s+intelligence|machine\s+learn|deep\s+learn|` +
		`chatbot|llm|gpt|gemini|claude|copilot|openai|anthropic|` +
		`automat(ed|ion)|algorithm|neural\s+net|generat(ive|or)|` +
		`self.driv|autonom(ous|y)|robot(ic)?)\b`)

var disasterPattern = regexp.MustCompile(`(?i)` + strings.Join([]string{
	`fail`, `error`, `wrong`, `lawsuit`, `sued`, `ban`,
	`recall`, `crash`, `bias`, `discriminat`, `hallucin`,
	`leak`, `breach`, `harm`, `death`, `kill`, `injur`,
	`fired`, `laid\s*off`, `replac`, `mislead`, `scam`,
	`fraud`, `fake`, `deepfake`, `backtrack`, `revers`,
	`abandon`, `shut\s*down`, `apologize`, `apologise`,
	`controversy`, `backlash`, `outrage`, `investigate`,
	`probe`, `fine[ds]?\b`, `penalt`, `violat`,
	`inaccura`, `fabricat`, `misinform`, `dangerous`,
	`unsafe`, `risk`, `vulnerab`, `exploit`,
}, "|"))

// RSSSource scans one curated RSS/Atom feed for AI risk stories.
type RSSSource struct {
	name  string
	url   string
	days  int
	limit int
}

func NewRSSSource(name, url string, days, limit int) *RSSSource {
	return &RSSSource{name: name, url: url, days: days, limit: limit}
}

func (s *RSSSource) Name() string { return s.name }

// Fetch parses the feed and keeps entries within the look-back window that
// match both the AI and the disaster pattern.
func (s *RSSSource) Fetch(ctx context.Context) ([]scan.RawDocument, error) {
	feed, err := parseFeed(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.name, err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -s.days)
	var docs []scan.RawDocument
	for i, item := range feed.Items {
		if i >= s.limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		summary := itemSummary(item)
		if !aiPattern.MatchString(title+" "+summary) || !disasterPattern.MatchString(title+" "+summary) {
			continue
		}

		published := itemPublished(item)
		if published.Before(cutoff) {
			continue
		}

		docs = append(docs, scan.RawDocument{
			Title:     title,
			Source:    s.name,
			URL:       item.Link,
			Published: published.Format("2006-01-02"),
			Summary:   summary,
		})
	}
	return docs, nil
}

const defaultSearchBaseURL = "https://news.google.com/rss/search"

// SearchSource scans a news search RSS endpoint for one targeted query.
// Queries are already disaster-shaped, so no extra keyword gate applies.
type SearchSource struct {
	query   string
	days    int
	limit   int
	limiter *rate.Limiter
	baseURL string
}

func NewSearchSource(query string, days, limit int, limiter *rate.Limiter) *SearchSource {
	return &SearchSource{
		query:   query,
		days:    days,
		limit:   limit,
		limiter: limiter,
		baseURL: defaultSearchBaseURL,
	}
}

func (s *SearchSource) Name() string { return "Google News" }

func (s *SearchSource) Fetch(ctx context.Context) ([]scan.RawDocument, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing wait: %w", err)
		}
	}

	feedURL := s.baseURL + "?q=" + url.QueryEscape(s.query) + "&hl=en&gl=US&ceid=US:en"
	feed, err := parseFeed(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", s.query, err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -s.days)
	var docs []scan.RawDocument
	for i, item := range feed.Items {
		if i >= s.limit {
			break
		}
		published := itemPublished(item)
		if published.Before(cutoff) {
			continue
		}
		docs = append(docs, scan.RawDocument{
			Title:     strings.TrimSpace(item.Title),
			Source:    s.Name(),
			URL:       item.Link,
			Published: published.Format("2006-01-02"),
			Summary:   itemSummary(item),
		})
	}
	return docs, nil
}

func parseFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{}
	return parser.ParseURLWithContext(url, ctx)
}

// itemSummary prefers the description field, strips markup and caps length.
func itemSummary(item *gofeed.Item) string {
	raw := item.Description
	if raw == "" {
		raw = item.Content
	}
	return StripHTML(raw, scan.SummaryMaxChars)
}

// itemPublished resolves the entry timestamp: published, then updated, then
// current time when the feed gives nothing parseable.
func itemPublished(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Now().UTC()
}
