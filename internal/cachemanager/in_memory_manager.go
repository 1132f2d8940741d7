package cachemanager

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InMemoryCacheManager is the go-cache backed CacheManager.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewInMemoryCacheManager creates a cache whose entries expire after
// defaultExpiration unless Set is given an explicit TTL. useCase labels log
// lines. A nil logger discards them.
func NewInMemoryCacheManager[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration, logger *slog.Logger) *InMemoryCacheManager[K, V] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
		logger:  logger,
	}
}

// Get returns the cached value for key.
func (c *InMemoryCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V

	raw, found := c.cache.Get(string(key))
	if !found {
		c.logger.DebugContext(ctx, "cache miss", "cache", c.useCase, "key", string(key))
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		c.logger.ErrorContext(ctx, "cache entry has unexpected type", "cache", c.useCase, "key", string(key))
		return zero, false
	}

	c.logger.DebugContext(ctx, "cache hit", "cache", c.useCase, "key", string(key))
	return v, true
}

// Set stores value under key. A zero ttl uses the cache default.
func (c *InMemoryCacheManager[K, V]) Set(_ context.Context, key K, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(string(key), value, ttl)
}

// Delete removes keys.
func (c *InMemoryCacheManager[K, V]) Delete(_ context.Context, keys ...K) {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
}

// Flush removes every entry.
func (c *InMemoryCacheManager[K, V]) Flush(context.Context) {
	c.cache.Flush()
}

// Len reports the number of entries, including expired ones not yet evicted.
func (c *InMemoryCacheManager[K, V]) Len() int {
	return c.cache.ItemCount()
}
