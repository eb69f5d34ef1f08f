package usecase

import (
	"context"
	"strings"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/research"
)

func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, query string) (research.SearchOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return research.SearchOutput{}, research.ErrEmptyQuery
	}
	if uc.search == nil {
		return research.SearchOutput{}, research.ErrUnavailable
	}

	key := strings.ToLower(query)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "research.Search: cache hit for %q", query)
		cached.Cached = true
		return cached, nil
	}

	resp, err := uc.search.Search(ctx, query)
	if err != nil {
		uc.l.Warnf(ctx, "research.Search: %v", err)
		return research.SearchOutput{}, err
	}
	if resp.Answer == "" && len(resp.Results) == 0 {
		return research.SearchOutput{}, research.ErrNoResults
	}

	out := research.SearchOutput{Answer: resp.Answer}
	for _, r := range resp.Results {
		out.Sources = append(out.Sources, research.Source{Title: r.Title, URL: r.URL})
	}
	if out.Answer == "" {
		// No summary from the API; fall back to the top result snippet.
		out.Answer = resp.Results[0].Content
	}

	uc.cache.Add(key, out)
	return out, nil
}
