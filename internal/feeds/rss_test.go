package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func rssBody(items string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title>` + items + `</channel></rss>`
}

func rssItem(title, description string, published time.Time) string {
	return fmt.Sprintf(
		`<item><title>%s</title><link>https://example.com/a</link><description>%s</description><pubDate>%s</pubDate></item>`,
		title, description, published.Format(time.RFC1123Z))
}

func TestRSSSourceFiltersAndClassifiesWindow(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	body := rssBody(
		// AI + disaster signals, fresh: kept.
		rssItem("AI chatbot sued over hallucination", "<p>The vendor faces a lawsuit.</p>", now.Add(-24*time.Hour)) +
			// fresh but no AI signal: dropped.
			rssItem("City council approves new parking fines", "Higher penalty for violations downtown.", now.Add(-24*time.Hour)) +
			// AI + disaster but outside the window: dropped.
			rssItem("AI system failure disrupted hospital", "An algorithm error harmed operations.", now.Add(-30*24*time.Hour)),
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	src := NewRSSSource("Test Feed", server.URL, 7, 15)
	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc.Title != "AI chatbot sued over hallucination" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Source != "Test Feed" {
		t.Errorf("source = %q", doc.Source)
	}
	if doc.Summary != "The vendor faces a lawsuit." {
		t.Errorf("summary not stripped: %q", doc.Summary)
	}
	if doc.Published != now.Add(-24*time.Hour).Format("2006-01-02") {
		t.Errorf("published = %q", doc.Published)
	}
}

func TestRSSSourceRespectsEntryLimit(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	var items string
	for i := 0; i < 5; i++ {
		items += rssItem(
			fmt.Sprintf("AI tool crash number %d reported", i),
			"An automated system failure.",
			now.Add(-time.Duration(i)*time.Hour))
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssBody(items)))
	}))
	defer server.Close()

	src := NewRSSSource("Test Feed", server.URL, 7, 2)
	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("limit of 2 entries, got %d documents", len(docs))
	}
}

func TestRSSSourceFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewRSSSource("Broken Feed", server.URL, 7, 15)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error from failing feed")
	}
}

func TestRSSSourceMissingDateFallsBackToToday(t *testing.T) {
	t.Parallel()

	// No pubDate at all: the entry counts as fresh and is stamped with the
	// current date rather than dropped.
	body := rssBody(`<item><title>AI tool failure reported at plant</title><link>https://example.com/a</link><description>An automated system error.</description></item>`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	before := time.Now().UTC().Format("2006-01-02")
	src := NewRSSSource("Test Feed", server.URL, 7, 15)
	docs, err := src.Fetch(context.Background())
	after := time.Now().UTC().Format("2006-01-02")

	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if got := docs[0].Published; got != before && got != after {
		t.Errorf("published = %q, want today's date", got)
	}
}

func TestSearchSourceQueryAndWindow(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	body := rssBody(
		rssItem("Fresh story about anything", "No keyword gate here.", now.Add(-24*time.Hour)) +
			rssItem("Stale story", "Outside the window.", now.Add(-30*24*time.Hour)),
	)

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		if r.URL.Query().Get("hl") != "en" || r.URL.Query().Get("gl") != "US" {
			t.Errorf("locale params missing: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	src := &SearchSource{query: "AI failure disaster", days: 7, limit: 10, baseURL: server.URL}
	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotQuery != "AI failure disaster" {
		t.Errorf("query param = %q", gotQuery)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document inside the window, got %d", len(docs))
	}
	if docs[0].Title != "Fresh story about anything" {
		t.Errorf("title = %q", docs[0].Title)
	}
	if docs[0].Source != "Google News" {
		t.Errorf("source = %q", docs[0].Source)
	}
}

func TestSearchSourceRespectsEntryLimit(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	var items string
	for i := 0; i < 5; i++ {
		items += rssItem(fmt.Sprintf("Story number %d", i), "Body.", now.Add(-time.Duration(i)*time.Hour))
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssBody(items)))
	}))
	defer server.Close()

	src := &SearchSource{query: "anything", days: 7, limit: 2, baseURL: server.URL}
	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("limit of 2 entries, got %d documents", len(docs))
	}
}

func TestSearchSourceCanceledContextDuringPacing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter := rate.NewLimiter(rate.Every(time.Millisecond), 1)
	src := &SearchSource{query: "anything", days: 7, limit: 10, limiter: limiter, baseURL: "http://127.0.0.1:1"}
	if _, err := src.Fetch(ctx); err == nil {
		t.Fatalf("expected pacing wait error on canceled context")
	}
}

func TestNewSearchSourceUsesPublicEndpoint(t *testing.T) {
	t.Parallel()

	src := NewSearchSource("q", 7, 10, nil)
	if src.baseURL != defaultSearchBaseURL {
		t.Errorf("baseURL = %q", src.baseURL)
	}
}

func TestDisasterAndAIPatterns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text     string
		ai       bool
		disaster bool
	}{
		{"OpenAI faces probe after data leak", true, true},
		{"chatbot gives wrong answer", true, true},
		{"quarterly earnings beat estimates", false, false},
		{"robotic surgery recall announced", true, true},
		{"a quiet afternoon in the park", false, false},
	}
	for _, tc := range cases {
		if got := aiPattern.MatchString(tc.text); got != tc.ai {
			t.Errorf("aiPattern(%q) = %v, want %v", tc.text, got, tc.ai)
		}
		if got := disasterPattern.MatchString(tc.text); got != tc.disaster {
			t.Errorf("disasterPattern(%q) = %v, want %v", tc.text, got, tc.disaster)
		}
	}
}
