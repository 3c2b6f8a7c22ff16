package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisCache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, &redisCache{client: client}
}

func TestRedisCache_SetGet(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "user:123:jwt", `{"id":"123"}`, time.Minute))

	value, ok, err := cache.Get(ctx, "user:123:jwt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"123"}`, value)
}

func TestRedisCache_MissingKey(t *testing.T) {
	_, cache := newTestCache(t)

	value, ok, err := cache.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "ephemeral", "v", 30*time.Second))

	mr.FastForward(31 * time.Second)

	_, ok, err := cache.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.False(t, ok)
}
