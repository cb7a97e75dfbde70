package lookup

import (
	"context"
	"log/slog"

	"github.com/soterkit/soter/pkg/logger"
	"github.com/soterkit/soter/pkg/validator"
)

// CachedOption configures Cached.
type CachedOption func(*cachedLookup)

// WithCacheLogger logs cache write failures. They never fail a lookup.
func WithCacheLogger(l *slog.Logger) CachedOption {
	return func(c *cachedLookup) {
		if l != nil {
			c.logger = l.With(logger.Component("lookup.cache"))
		}
	}
}

type cachedLookup struct {
	next   validator.Lookup
	cache  Cache
	logger *slog.Logger
}

// Cached serves objects from cache and falls back to next on a miss.
// A nil cache behaves like NoOpCache.
func Cached(next validator.Lookup, cache Cache, opts ...CachedOption) validator.Lookup {
	if cache == nil {
		cache = NoOpCache{}
	}
	c := &cachedLookup{next: next, cache: cache, logger: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cachedLookup) Resolve(ctx context.Context, kind, id string) (any, error) {
	key := Key(kind, id)
	if obj, ok := c.cache.Get(ctx, key); ok {
		return obj, nil
	}

	obj, err := c.next.Resolve(ctx, kind, id)
	if err != nil || obj == nil {
		return obj, err
	}

	if err := c.cache.Set(ctx, key, obj); err != nil {
		c.logger.WarnContext(ctx, "failed to cache object",
			logger.Kind(kind),
			slog.String("id", id),
			logger.Error(err),
		)
	}
	return obj, nil
}
