package scope4

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/scope4/google-sheets/internal/domain"
	"github.com/scope4/google-sheets/internal/metrics"
)

// requestTimeout bounds one search end to end. The add-on's own execution
// budget sits just above this, so the fetch must give up first.
const requestTimeout = 50 * time.Second

// Client talks to the Scope4 LCA search API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a Scope4 API client. The key is sent as a bearer token
// on every request. rps and burst pace outbound calls: a full-sheet
// recalculation fires one request per cell, which is exactly how to trip
// the API's 429 ceiling, so the burst must cover one screenful of cells.
func NewClient(apiKey, baseURL string, rps float64, burst int, logger zerolog.Logger) *Client {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 30
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// Search issues a single GET against the search endpoint. It never retries,
// and a non-2xx status is not an error: whatever the API answered is handed
// back for classification. Errors mean the transport itself failed.
func (c *Client) Search(ctx context.Context, params domain.QueryParameters) (*domain.RawResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/search?%s", c.baseURL, BuildQuery(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrAPIFailure, err)
	}

	c.logger.Debug().
		Str("item", params.ItemName).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("scope4 search")

	return &domain.RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

// BuildQuery assembles the outbound query string. item_name is always
// present; year, geography, metric, mode, num_matches, domain and unit are
// appended only when non-empty; web_mode=false and not_english are always
// appended. url.Values encodes keys in sorted order, which keeps the result
// stable for equal parameters.
func BuildQuery(p domain.QueryParameters) string {
	q := url.Values{}
	q.Set("item_name", p.ItemName)
	if p.Year != "" {
		q.Set("year", p.Year)
	}
	if p.Geography != "" {
		q.Set("geography", p.Geography)
	}
	if p.Metric != "" {
		q.Set("metric", p.Metric)
	}
	if p.Mode != "" {
		q.Set("mode", p.Mode)
	}
	if p.NumMatches != 0 {
		q.Set("num_matches", strconv.Itoa(p.NumMatches))
	}
	if p.Domain != "" {
		q.Set("domain", p.Domain)
	}
	if p.Unit != "" {
		q.Set("unit", p.Unit)
	}
	q.Set("web_mode", "false")
	q.Set("not_english", strconv.FormatBool(p.NotEnglish))
	return q.Encode()
}
