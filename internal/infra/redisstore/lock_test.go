//go:build unit

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"voucher-seckill/internal/infra/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLock(t *testing.T) {
	ctx := context.Background()

	t.Run("success: acquire then release", func(t *testing.T) {
		mr, rdb := newRedis(t)
		lock := redisstore.NewUserLock(rdb, 10*time.Second)

		token, ok, err := lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotEmpty(t, token)
		assert.True(t, mr.Exists("lock:order:42"))

		require.NoError(t, lock.Release(ctx, 42, token))
		assert.False(t, mr.Exists("lock:order:42"))
	})

	t.Run("contention: second acquire fails without error", func(t *testing.T) {
		_, rdb := newRedis(t)
		lock := redisstore.NewUserLock(rdb, 10*time.Second)

		_, ok, err := lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = lock.TryAcquire(ctx, 43)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("stale holder cannot release a re-acquired lease", func(t *testing.T) {
		mr, rdb := newRedis(t)
		lock := redisstore.NewUserLock(rdb, time.Second)

		stale, ok, err := lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		current, ok, err := lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, lock.Release(ctx, 42, stale))
		got, err := mr.Get("lock:order:42")
		require.NoError(t, err)
		assert.Equal(t, current, got)
	})

	t.Run("ttl bounds a crashed holder", func(t *testing.T) {
		mr, rdb := newRedis(t)
		lock := redisstore.NewUserLock(rdb, time.Second)

		_, ok, err := lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(1500 * time.Millisecond)
		_, ok, err = lock.TryAcquire(ctx, 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
