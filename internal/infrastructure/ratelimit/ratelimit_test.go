package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_BurstThenDeny(t *testing.T) {
	l := NewLocalLimiter(1, 2)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "user-1"))
	assert.True(t, l.Allow(ctx, "user-1"))
	assert.False(t, l.Allow(ctx, "user-1"))
	assert.True(t, l.Allow(ctx, "user-2"))
}

func TestLocalLimiter_ZeroRateDisables(t *testing.T) {
	l := NewLocalLimiter(0, 1)
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), "k"))
	}
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	var nilLimiter *RedisLimiter
	assert.True(t, nilLimiter.Allow(context.Background(), "k"))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	l := NewRedisLimiter(client, "test:", 1, time.Minute)
	assert.True(t, l.Allow(context.Background(), "k"))
}

func TestNew_SelectsBackend(t *testing.T) {
	l, closeFn, err := New("", 60, 5)
	require.NoError(t, err)
	assert.IsType(t, &LocalLimiter{}, l)
	require.NoError(t, closeFn())

	l, closeFn, err = New("redis://localhost:6379/0", 60, 5)
	require.NoError(t, err)
	assert.IsType(t, &RedisLimiter{}, l)
	require.NoError(t, closeFn())

	_, _, err = New("://bad", 60, 5)
	assert.Error(t, err)
}
