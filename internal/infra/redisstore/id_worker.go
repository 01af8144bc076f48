package redisstore

import (
	"context"
	"time"

	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const countBits = 32

// IDWorker builds ids as (seconds since epoch << 32) | daily counter.
// The counter lives in Redis so every process shares one sequence per key and day.
type IDWorker struct {
	rdb   redis.UniversalClient
	clock clock.Clock
	epoch int64
}

func NewIDWorker(rdb redis.UniversalClient, clk clock.Clock, epoch int64) *IDWorker {
	return &IDWorker{rdb: rdb, clock: clk, epoch: epoch}
}

func (w *IDWorker) NextID(ctx context.Context, keyPrefix string) (int64, error) {
	now := w.clock.Now().UTC()
	timestamp := now.Unix() - w.epoch
	if timestamp < 0 {
		return 0, errs.Newf("clock %s is before id epoch", now.Format(time.RFC3339))
	}

	key := idKeyPrefix + keyPrefix + ":" + now.Format("2006:01:02")
	count, err := w.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, errs.Wrap(err, "failed to increment id counter")
	}
	if count >= 1<<countBits {
		return 0, errs.Newf("id counter %s exhausted", key)
	}

	return timestamp<<countBits | count, nil
}
