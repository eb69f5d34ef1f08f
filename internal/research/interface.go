package research

import (
	"context"

	"skill-tracking-assistant/internal/model"
)

// UseCase answers factual questions via web search.
type UseCase interface {
	// Search runs a web search and returns a condensed answer. Results are
	// cached briefly so repeated questions do not burn API quota.
	Search(ctx context.Context, sc model.Scope, query string) (SearchOutput, error)
}

// SearchOutput is a condensed web search result.
type SearchOutput struct {
	Answer  string
	Sources []Source
	Cached  bool
}

// Source is one supporting link.
type Source struct {
	Title string
	URL   string
}
