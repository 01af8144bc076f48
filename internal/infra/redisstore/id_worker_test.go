//go:build unit

package redisstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEpoch = 1640995200

func TestIDWorker_NextID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: layout is seconds since epoch and daily counter", func(t *testing.T) {
		mr, rdb := newRedis(t)
		clk := clock.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		worker := redisstore.NewIDWorker(rdb, clk, testEpoch)

		id, err := worker.NextID(ctx, "order")
		require.NoError(t, err)

		wantSeconds := clk.Now().Unix() - testEpoch
		assert.Equal(t, wantSeconds, id>>32)
		assert.Equal(t, int64(1), id&0xFFFFFFFF)

		counter, err := mr.Get("icr:order:2024:03:01")
		require.NoError(t, err)
		assert.Equal(t, "1", counter)
	})

	t.Run("success: sequential ids strictly increase", func(t *testing.T) {
		_, rdb := newRedis(t)
		clk := clock.NewMockClock(time.Date(2024, 3, 1, 23, 59, 58, 0, time.UTC))
		worker := redisstore.NewIDWorker(rdb, clk, testEpoch)

		var prev int64
		for i := 0; i < 50; i++ {
			if i%10 == 0 {
				clk.Add(time.Second)
			}
			id, err := worker.NextID(ctx, "order")
			require.NoError(t, err)
			assert.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("success: concurrent callers get unique ids", func(t *testing.T) {
		_, rdb := newRedis(t)
		worker := redisstore.NewIDWorker(rdb, clock.NewRealClock(), testEpoch)

		const n = 100
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := worker.NextID(ctx, "order")
				if err == nil {
					ids <- id
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]struct{}, n)
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
	})

	t.Run("error: clock before epoch", func(t *testing.T) {
		_, rdb := newRedis(t)
		clk := clock.NewMockClock(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
		worker := redisstore.NewIDWorker(rdb, clk, testEpoch)

		_, err := worker.NextID(ctx, "order")
		assert.Error(t, err)
	})
}
