package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobscout/internal/model"
)

// The primary offers endpoint plus two fallbacks that dodge edge caching.
// The first endpoint that returns a valid payload wins; each attempt is
// independent.
var justJoinEndpoints = []string{
	"https://justjoin.it/api/offers",
	"https://justjoin.it/api/offers?",
	"https://justjoin.it/api/offers?language=en",
}

// justJoinOffer represents a single offer in the JustJoin.it API response.
// Unknown fields are ignored so additive schema changes stay harmless.
type justJoinOffer struct {
	Title           string               `json:"title"`
	CompanyName     string               `json:"company_name"`
	City            string               `json:"city"`
	CountryCode     string               `json:"country_code"`
	Remote          bool                 `json:"remote"`
	Skills          []string             `json:"skills"`
	PublishedAt     string               `json:"published_at"`
	URL             string               `json:"url"`
	EmploymentTypes []justJoinEmployment `json:"employment_types"`
}

type justJoinEmployment struct {
	Salary *justJoinSalary `json:"salary"`
}

type justJoinSalary struct {
	From     json.Number `json:"from"`
	To       json.Number `json:"to"`
	Currency string      `json:"currency"`
}

// JustJoinAdapter fetches offers from the JustJoin.it public API.
type JustJoinAdapter struct {
	endpoints []string
	client    *http.Client
}

// NewJustJoinAdapter creates an adapter for the JustJoin.it offers API.
func NewJustJoinAdapter(client *http.Client) *JustJoinAdapter {
	return &JustJoinAdapter{
		endpoints: justJoinEndpoints,
		client:    client,
	}
}

// Name identifies the source in warnings and logs.
func (a *JustJoinAdapter) Name() string {
	return string(model.SourceJustJoin)
}

// Fetch tries each offers endpoint in order and maps the first valid payload
// into the unified posting model.
func (a *JustJoinAdapter) Fetch(ctx context.Context) ([]model.JobPosting, error) {
	var lastErr error
	for _, url := range a.endpoints {
		offers, err := a.fetchOffers(ctx, url)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		postings := make([]model.JobPosting, 0, len(offers))
		for _, offer := range offers {
			postings = append(postings, model.JobPosting{
				Source:    model.SourceJustJoin,
				Company:   offer.CompanyName,
				Title:     offer.Title,
				Salary:    formatSalary(offer.EmploymentTypes),
				City:      offer.City,
				Country:   offer.CountryCode,
				Remote:    yesNo(offer.Remote),
				TechStack: strings.Join(offer.Skills, ", "),
				URL:       offer.URL,
				PostedAt:  offer.PublishedAt,
			})
		}
		return postings, nil
	}
	return nil, lastErr
}

func (a *JustJoinAdapter) fetchOffers(ctx context.Context, url string) ([]justJoinOffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("justjoin fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("justjoin fetch: %w: %w", model.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("justjoin fetch %s: %w: unexpected status %d", url, model.ErrSourceUnavailable, resp.StatusCode),
		}
	}

	var offers []justJoinOffer
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, fmt.Errorf("justjoin decode: %w: %w", model.ErrMalformedResponse, err)
	}
	return offers, nil
}

// formatSalary renders every employment type that carries a complete salary
// range as "from - to CUR", joined with "; ". Incomplete ranges are skipped.
func formatSalary(types []justJoinEmployment) string {
	var ranges []string
	for _, et := range types {
		s := et.Salary
		if s == nil || s.From == "" || s.To == "" || s.Currency == "" {
			continue
		}
		ranges = append(ranges, fmt.Sprintf("%s - %s %s", s.From, s.To, s.Currency))
	}
	return strings.Join(ranges, "; ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
