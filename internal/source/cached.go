package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/cachemanager"
	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

type cacheKey string

// CachedSource serves Load from memory for ttl after each successful fetch.
type CachedSource struct {
	inner Source
	key   cacheKey
	cache *cachemanager.ReadThroughCache[cacheKey, []domain.Issue]
}

func NewCachedSource(inner Source, ttl time.Duration, logger *slog.Logger) *CachedSource {
	store := cachemanager.NewInMemoryCacheManager[cacheKey, []domain.Issue](
		"issues", ttl, cachemanager.DefaultCleanupInterval, logger)
	return &CachedSource{
		inner: inner,
		key:   cacheKey(inner.Describe()),
		cache: cachemanager.NewReadThroughCache[cacheKey, []domain.Issue](store, ttl, inner.Load),
	}
}

func (s *CachedSource) Describe() string { return s.inner.Describe() }

// Load returns a copy of the cached collection so callers cannot alias it.
func (s *CachedSource) Load(ctx context.Context) ([]domain.Issue, error) {
	issues, err := s.cache.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Issue, len(issues))
	for i := range issues {
		out[i] = issues[i].Clone()
	}
	return out, nil
}

// Invalidate forces the next Load to hit the wrapped source.
func (s *CachedSource) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, s.key)
}
