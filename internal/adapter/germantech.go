package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/internal/model"
)

const germanTechBaseURL = "https://germantechjobs.de"

// userAgent is sent with every outbound request; some boards reject the
// default Go client string.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// GermanTechAdapter scrapes the GermanTechJobs.de listing page.
type GermanTechAdapter struct {
	baseURL string
	query   string
	client  *http.Client
}

// NewGermanTechAdapter creates an adapter that searches GermanTechJobs.de
// for the given query.
func NewGermanTechAdapter(query string, client *http.Client) *GermanTechAdapter {
	return &GermanTechAdapter{
		baseURL: germanTechBaseURL,
		query:   query,
		client:  client,
	}
}

// Name identifies the source in warnings and logs.
func (a *GermanTechAdapter) Name() string {
	return string(model.SourceGermanTech)
}

// Fetch downloads the listing page and extracts postings from its job cards.
func (a *GermanTechAdapter) Fetch(ctx context.Context) ([]model.JobPosting, error) {
	pageURL := fmt.Sprintf("%s/jobs?search=%s", a.baseURL, url.QueryEscape(a.query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("germantech fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("germantech fetch: %w: %w", model.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("germantech fetch: %w: unexpected status %d", model.ErrSourceUnavailable, resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("germantech parse: %w: %w", model.ErrMalformedResponse, err)
	}

	return a.extractPostings(doc)
}

// extractPostings walks the listing cards. Cards missing a company or title
// are dropped; missing optional fields stay empty. A page with no
// recognizable cards at all is treated as a markup change.
func (a *GermanTechAdapter) extractPostings(doc *goquery.Document) ([]model.JobPosting, error) {
	cards := doc.Find("article, div.job-card, div.job-listing")
	if cards.Length() == 0 {
		cards = doc.Find("a[href*='/jobs/']")
	}
	if cards.Length() == 0 {
		return nil, fmt.Errorf("germantech parse: %w: no job cards found", model.ErrMalformedResponse)
	}

	var postings []model.JobPosting
	cards.Each(func(_ int, card *goquery.Selection) {
		title := firstText(card, "h2", "h3", ".job-title")
		company := firstText(card, ".company", ".company-name", ".job-company")
		if title == "" || company == "" {
			return
		}

		postings = append(postings, model.JobPosting{
			Source:  model.SourceGermanTech,
			Company: company,
			Title:   title,
			City:    firstText(card, ".location", ".job-location", ".locations"),
			Country: "DE",
			URL:     a.cardLink(card),
		})
	})

	return postings, nil
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(card *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(card.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// cardLink resolves the card's apply link, turning site-relative hrefs into
// absolute URLs. The card itself may be the anchor.
func (a *GermanTechAdapter) cardLink(card *goquery.Selection) string {
	href, ok := card.Attr("href")
	if !ok {
		href, _ = card.Find("a[href]").First().Attr("href")
	}
	if strings.HasPrefix(href, "/") {
		return a.baseURL + href
	}
	return href
}
