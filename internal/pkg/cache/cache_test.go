package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*FeedCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewFeedCache(client, 5*time.Minute), mr
}

type page struct {
	Titles []string `json:"titles"`
}

func TestFeedCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out page
	hit, err := c.Get(context.Background(), "llm", 1, 10, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFeedCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "llm", 1, 10, &page{Titles: []string{"a", "b"}}))

	var out page
	hit, err := c.Get(ctx, "llm", 1, 10, &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, out.Titles)

	// 不同分页是不同的key
	hit, err = c.Get(ctx, "llm", 2, 10, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFeedCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "llm", 1, 10, &page{Titles: []string{"a"}}))
	mr.FastForward(6 * time.Minute)

	var out page
	hit, err := c.Get(ctx, "llm", 1, 10, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}
