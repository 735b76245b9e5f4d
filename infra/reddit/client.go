package reddit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arjenvk/threadbare/domain"
)

const userAgent = "threadbare/1.0 (terminal thread reader)"

// Client is a thin HTTP wrapper for the public JSON listing endpoints.
// It handles base URL construction and the User-Agent the API expects.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a listing client for an origin, e.g.
// "https://www.reddit.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Get performs a GET request for a path under the origin.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("GET %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s returned %d", path, resp.StatusCode)
	}

	return data, nil
}
