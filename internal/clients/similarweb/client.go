// Package similarweb calls the third-party traffic analytics provider
// (a SimilarWeb scraper actor run on Apify) and returns raw, untrusted
// analytics records. Normalization happens elsewhere, in internal/traffic.
package similarweb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

// defaultActor is the Apify actor that scrapes SimilarWeb.
const defaultActor = "tri_angle~similarweb-scraper"

// ErrTimeout marks a provider call that exceeded its deadline. The scraper
// backend is slow (runs take up to ~90s); callers treat a timeout as
// "no data yet", not as a failure of the analysis pipeline.
var ErrTimeout = errors.New("analytics provider timed out")

// Client talks to the analytics provider.
type Client struct {
	baseURL    string
	token      string
	actor      string
	httpClient *http.Client
}

// NewClient builds a provider client. The timeout applies to the whole
// run-sync call, scraping included.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		actor:      defaultActor,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type runInput struct {
	Websites []string `json:"websites"`
}

// FetchDomain runs the scraper synchronously for one domain and returns
// the dataset items: a list of zero or one raw records. An empty list
// means the provider does not know the site.
func (c *Client) FetchDomain(ctx context.Context, domain string) ([]traffic.RawAnalyticsRecord, error) {
	body, err := json.Marshal(runInput{Websites: []string{domain}})
	if err != nil {
		return nil, fmt.Errorf("encoding provider input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, c.actor, url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("calling analytics provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analytics provider returned status %d", resp.StatusCode)
	}

	var records []traffic.RawAnalyticsRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}
	return records, nil
}

// TokenConfigured reports whether a provider token is set, with a masked
// prefix for diagnostics.
func (c *Client) TokenConfigured() (bool, string) {
	if c.token == "" {
		return false, "NON_CONFIGURATO"
	}
	prefix := c.token
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return true, prefix + "..."
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
