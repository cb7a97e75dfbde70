package lookup

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	key       string
	obj       any
	expiresAt time.Time
}

// MemoryCache is a thread-safe LRU cache whose entries also expire after
// a fixed TTL. When full, the least recently used entry is evicted.
type MemoryCache struct {
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	eviction *list.List
	now      func() time.Time
	mu       sync.Mutex
}

// NewMemoryCache creates a cache holding at most capacity objects for ttl
// each. A ttl <= 0 disables expiry. The capacity must be positive,
// otherwise it panics.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		panic("memory cache capacity must be positive")
	}
	return &MemoryCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Get retrieves an object and marks it as recently used. Expired entries
// are dropped on access.
func (c *MemoryCache) Get(_ context.Context, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*memoryEntry)
	if c.expired(entry) {
		c.removeElement(elem)
		return nil, false
	}
	c.eviction.MoveToFront(elem)
	return entry.obj, true
}

// Set adds or replaces an object and restarts its TTL.
func (c *MemoryCache) Set(_ context.Context, key string, obj any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*memoryEntry)
		entry.obj = obj
		entry.expiresAt = expiresAt
		return nil
	}

	c.items[key] = c.eviction.PushFront(&memoryEntry{key: key, obj: obj, expiresAt: expiresAt})
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	return nil
}

// Len reports the number of entries, expired ones included until they
// are touched.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *MemoryCache) expired(entry *memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt)
}

// Must be called with lock held.
func (c *MemoryCache) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*memoryEntry).key)
}
