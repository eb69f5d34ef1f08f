package tavily

import (
	"context"

	pkgLog "skill-tracking-assistant/pkg/log"
)

// ISearch is the interface for Tavily web search operations.
type ISearch interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// New creates a Tavily client.
func New(l pkgLog.Logger, cfg Config) (ISearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(l, cfg), nil
}
