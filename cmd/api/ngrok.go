package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ngrok needs a moment to open its tunnels after container start.
const (
	ngrokMaxAttempts   = 10
	ngrokRetryInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS
// tunnel URL, retrying while ngrok starts up. Used to self-register the
// Telegram webhook during local development.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= ngrokMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryInterval):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			if attempt == ngrokMaxAttempts {
				return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokMaxAttempts, err)
			}
			continue
		}

		var tunnels ngrokTunnelsResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&tunnels)
		resp.Body.Close()
		if decodeErr != nil {
			return "", fmt.Errorf("failed to decode ngrok API response: %w", decodeErr)
		}

		for _, t := range tunnels.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokMaxAttempts)
}
