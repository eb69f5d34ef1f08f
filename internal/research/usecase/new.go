package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"skill-tracking-assistant/internal/research"
	pkgLog "skill-tracking-assistant/pkg/log"
	"skill-tracking-assistant/pkg/tavily"
)

const (
	cacheSize = 128
	cacheTTL  = 15 * time.Minute
)

type implUseCase struct {
	l      pkgLog.Logger
	search tavily.ISearch
	cache  *expirable.LRU[string, research.SearchOutput]
}

// New creates a new research UseCase instance. search may be nil when no
// API key is configured; Search then reports ErrUnavailable.
func New(l pkgLog.Logger, search tavily.ISearch) *implUseCase {
	return &implUseCase{
		l:      l,
		search: search,
		cache:  expirable.NewLRU[string, research.SearchOutput](cacheSize, nil, cacheTTL),
	}
}
