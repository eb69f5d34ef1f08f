package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkgLog "skill-tracking-assistant/pkg/log"
)

type client struct {
	l          pkgLog.Logger
	cfg        Config
	httpClient *http.Client
}

func newClient(l pkgLog.Logger, cfg Config) *client {
	return &client{
		l:          l,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Search runs one web search. The AI answer summary is requested so callers
// can reply without post-processing raw page content.
func (c *client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	payload := SearchRequest{
		Query:         query,
		SearchDepth:   c.cfg.SearchDepth,
		IncludeAnswer: true,
		MaxResults:    c.cfg.MaxResults,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tavily: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: API error: status %d", resp.StatusCode)
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("tavily: decode response: %w", err)
	}

	c.l.Debugf(ctx, "tavily: %d results for %q", len(out.Results), query)
	return &out, nil
}
