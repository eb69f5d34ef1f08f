package research

import "errors"

// Domain-specific errors for the research package.
var (
	ErrEmptyQuery  = errors.New("search query is empty")
	ErrNoResults   = errors.New("no search results")
	ErrUnavailable = errors.New("web search is not configured")
)
