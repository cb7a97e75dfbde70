package lookup

import "context"

// Cache stores resolved objects keyed by kind and id.
type Cache interface {
	// Get retrieves an object from cache by key.
	Get(ctx context.Context, key string) (any, bool)

	// Set stores an object in cache.
	Set(ctx context.Context, key string, obj any) error

	// Delete removes an object from cache.
	Delete(ctx context.Context, key string) error
}

// NoOpCache disables caching, useful for testing or when caching is unwanted.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, key string) (any, bool) {
	return nil, false
}

func (NoOpCache) Set(ctx context.Context, key string, obj any) error {
	return nil
}

func (NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Key builds the cache key for an object.
func Key(kind, id string) string {
	return kind + ":" + id
}
