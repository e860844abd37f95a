//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisLimiter_BlocksAfterLimit(t *testing.T) {
	_, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 3, time.Minute, "test")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own window")
}

func TestRedisLimiter_WindowExpires(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 1, time.Minute, "test")
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	assert.Greater(t, mr.TTL("test:k"), time.Duration(0))
	mr.FastForward(time.Minute + time.Second)

	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_RedisDown(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRedisLimiter(rdb, 1, time.Minute, "test")
	mr.Close()

	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryLimiter(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("blocks the request after the burst", func(t *testing.T) {
		ok, _ := l.Allow(ctx, "a")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "a")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("refills over the window", func(t *testing.T) {
		now = now.Add(30 * time.Second)
		ok, _ := l.Allow(ctx, "a")
		assert.True(t, ok)
		ok, _ = l.Allow(ctx, "a")
		assert.False(t, ok)
	})

	t.Run("evicts idle clients", func(t *testing.T) {
		_, _ = l.Allow(ctx, "b")
		now = now.Add(5 * time.Minute)
		_, _ = l.Allow(ctx, "c")

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.NotContains(t, l.visitors, "a")
		assert.NotContains(t, l.visitors, "b")
		assert.Contains(t, l.visitors, "c")
	})
}

func TestNormalize(t *testing.T) {
	limit, window := normalize(0, 0)
	assert.Equal(t, defaultLimit, limit)
	assert.Equal(t, defaultWindow, window)
}
