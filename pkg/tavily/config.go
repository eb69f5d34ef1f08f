package tavily

import (
	"errors"
	"time"
)

// Config holds Tavily client configuration.
type Config struct {
	APIKey      string
	APIURL      string
	MaxResults  int
	SearchDepth string
	Timeout     time.Duration
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("tavily: API key is required")
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.SearchDepth == "" {
		c.SearchDepth = DefaultSearchDepth
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
