package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// ProfileSearcher finds raw person records for a (role, company) pair.
// Transport and authentication failures propagate unmodified; the engine
// defines no retry policy.
type ProfileSearcher interface {
	Search(ctx context.Context, role, company string, pageSize int) ([]RawProfile, error)
}

// DefaultProxycurlAPIBase is the production Proxycurl endpoint root.
const DefaultProxycurlAPIBase = "https://nubela.co/proxycurl"

// creditsPerResult is the midpoint of Proxycurl's 2–3 credits per enriched
// search result, logged so operators can watch spend.
const creditsPerResult = 2.5

// ProxycurlClient calls the Proxycurl Person Search API.
type ProxycurlClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// NewProxycurlClient creates a Proxycurl search client. baseURL may be
// empty for the production endpoint; httpClient may be nil for a default
// with a 30s timeout. Searches are rate-limited to one per second with a
// small burst so widened (peer-company) searches cannot spike credit spend.
func NewProxycurlClient(baseURL, apiKey string, httpClient *http.Client) *ProxycurlClient {
	if baseURL == "" {
		baseURL = DefaultProxycurlAPIBase
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ProxycurlClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// Search queries the Person Search API for people in (or having been in)
// the given role at the given company. A missing API key fails before any
// network I/O.
func (c *ProxycurlClient) Search(ctx context.Context, role, company string, pageSize int) ([]RawProfile, error) {
	if c.apiKey == "" {
		return nil, errors.New("proxycurl: PROXYCURL_API_KEY is not set")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("proxycurl: %w", err)
	}

	params := url.Values{
		"enrich_profiles":      {"enrich"},
		"current_role_title":   {role},
		"current_company_name": {company},
		"page_size":            {strconv.Itoa(pageSize)},
	}
	searchURL := c.baseURL + "/api/v2/search/person/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("proxycurl: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	slog.Info("proxycurl: person search",
		slog.String("role", role), slog.String("company", company))
	metrics.SearchRequests.Add(1)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxycurl: search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("proxycurl: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxycurl: status %d: %s", resp.StatusCode, TruncateRunes(string(body), 200, "..."))
	}

	results, err := decodeSearchResults(body)
	if err != nil {
		return nil, fmt.Errorf("proxycurl: %w", err)
	}

	metrics.SearchResults.Add(int64(len(results)))
	slog.Info("proxycurl: search done",
		slog.Int("results", len(results)),
		slog.Float64("est_credits", float64(len(results))*creditsPerResult),
	)
	return results, nil
}

// decodeSearchResults accepts both response shapes Proxycurl has shipped:
// a bare JSON array of profiles, or an envelope {"results": [...]}.
func decodeSearchResults(body []byte) ([]RawProfile, error) {
	var direct []RawProfile
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var envelope struct {
		Results []RawProfile `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w (body: %s)", err, TruncateRunes(string(body), 200, "..."))
	}
	return envelope.Results, nil
}
