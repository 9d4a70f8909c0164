// Package backend is the HTTP client for the opaque backend API that owns
// knowledge-base storage and prospect persistence. Most calls are straight
// proxies: the handler forwards the payload and returns the backend's
// envelope untouched.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
)

// Client talks to the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a backend client with a short timeout; the backend is
// expected to answer fast, and read endpoints fall back to mock data when
// it does not.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Do forwards one request to the backend and returns the raw response body
// and status, so proxy handlers can pass the envelope through untouched.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, int, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("calling backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading backend response: %w", err)
	}
	return payload, resp.StatusCode, nil
}

// getData performs a GET and unwraps the backend envelope into out.
func (c *Client) getData(ctx context.Context, path string, query url.Values, out any) error {
	payload, status, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("decoding backend response: %w", err)
	}
	if status >= 400 || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("backend error: %s", env.Error)
		}
		return fmt.Errorf("backend returned status %d", status)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// sendData performs a POST/PUT with a JSON body and checks the envelope.
func (c *Client) sendData(ctx context.Context, method, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding backend request: %w", err)
	}
	raw, status, err := c.Do(ctx, method, path, nil, payload)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding backend response: %w", err)
	}
	if status >= 400 || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("backend error: %s", env.Error)
		}
		return fmt.Errorf("backend returned status %d", status)
	}
	return nil
}

// SearchKnowledge queries the backend's AI search used to seed assistant
// prompts with knowledge-base context.
func (c *Client) SearchKnowledge(ctx context.Context, query string, limit int) ([]models.KnowledgeItem, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))

	var items []models.KnowledgeItem
	if err := c.getData(ctx, "/knowledge-base/search/ai", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetProspect fetches one prospect's full detail view.
func (c *Client) GetProspect(ctx context.Context, id string) (*models.ProspectDetails, error) {
	var details models.ProspectDetails
	if err := c.getData(ctx, "/similarweb/prospects/"+url.PathEscape(id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateProspectStatus persists a prospect's new lifecycle status.
func (c *Client) UpdateProspectStatus(ctx context.Context, id, status string) error {
	path := "/similarweb/prospects/" + url.PathEscape(id) + "/status"
	return c.sendData(ctx, http.MethodPut, path, map[string]string{"status": status})
}

// SaveAnalysis persists a completed traffic analysis snapshot as a
// prospect. Fire-and-forget from the analysis flow.
func (c *Client) SaveAnalysis(ctx context.Context, analysis *models.TrafficAnalysis) error {
	return c.sendData(ctx, http.MethodPost, "/similarweb/prospects", analysis)
}
