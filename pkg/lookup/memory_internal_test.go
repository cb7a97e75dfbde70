package lookup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(4, time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "user:1", "alice"))

	now = now.Add(59 * time.Second)
	obj, ok := c.Get(ctx, "user:1")
	assert.True(t, ok)
	assert.Equal(t, "alice", obj)

	now = now.Add(time.Second)
	_, ok = c.Get(ctx, "user:1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_SetRestartsTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(4, time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "user:1", "alice"))
	now = now.Add(50 * time.Second)
	require.NoError(t, c.Set(ctx, "user:1", "alice"))
	now = now.Add(50 * time.Second)

	_, ok := c.Get(ctx, "user:1")
	assert.True(t, ok)
}
