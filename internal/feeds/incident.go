package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/purnamedha/riskscan/internal/scan"
)

const defaultIncidentBaseURL = "https://incidentdatabase.ai"

// IncidentSource pulls recent entries from the incident database's JSON API.
type IncidentSource struct {
	baseURL string
	limit   int
	client  *http.Client
}

// NewIncidentSource builds the source. An empty baseURL selects the public
// incident database.
func NewIncidentSource(baseURL string, limit int) *IncidentSource {
	if baseURL == "" {
		baseURL = defaultIncidentBaseURL
	}
	return &IncidentSource{
		baseURL: baseURL,
		limit:   limit,
		client:  &http.Client{},
	}
}

func (s *IncidentSource) Name() string { return "AI Incident Database" }

type incidentResponse struct {
	Incidents []struct {
		IncidentID  json.Number `json:"incident_id"`
		Title       string      `json:"title"`
		Description string      `json:"description"`
		Date        string      `json:"date"`
	} `json:"incidents"`
}

// Fetch maps incidents to raw documents. An incident without a date keeps
// the literal "Unknown"; an untitled one gets a placeholder title so the
// dedup key is never empty.
func (s *IncidentSource) Fetch(ctx context.Context) ([]scan.RawDocument, error) {
	url := fmt.Sprintf("%s/api/incidents?limit=%d", s.baseURL, s.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build incident request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch incidents: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("incident API status %d", resp.StatusCode)
	}

	var payload incidentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode incidents: %w", err)
	}

	docs := make([]scan.RawDocument, 0, len(payload.Incidents))
	for _, inc := range payload.Incidents {
		title := inc.Title
		if title == "" {
			title = "Untitled Incident"
		}
		published := inc.Date
		if published == "" {
			published = "Unknown"
		}
		docs = append(docs, scan.RawDocument{
			Title:     title,
			Source:    s.Name(),
			URL:       fmt.Sprintf("%s/cite/%s", s.baseURL, inc.IncidentID.String()),
			Published: published,
			Summary:   StripHTML(inc.Description, scan.SummaryMaxChars),
		})
	}
	return docs, nil
}
