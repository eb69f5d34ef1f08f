package tavily

import "time"

const (
	// DefaultAPIURL is the Tavily search endpoint.
	DefaultAPIURL = "https://api.tavily.com/search"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResults caps hits per search.
	DefaultMaxResults = 5

	// DefaultSearchDepth trades latency for fuller page content.
	DefaultSearchDepth = "basic"
)
