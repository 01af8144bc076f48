package redisstore

import (
	"context"
	_ "embed"
	"strconv"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

//go:embed scripts/seckill.lua
var seckillSource string

var seckillScript = redis.NewScript(seckillSource)

// AdmissionGate decides admission with a single server-side script so that the
// stock check, the claim check, the decrement and the enqueue cannot interleave.
type AdmissionGate struct {
	rdb    redis.UniversalClient
	stream string
}

func NewAdmissionGate(rdb redis.UniversalClient, stream string) *AdmissionGate {
	return &AdmissionGate{rdb: rdb, stream: stream}
}

func (g *AdmissionGate) Admit(ctx context.Context, voucherID, userID, orderID int64) (voucher.AdmissionResult, error) {
	keys := []string{StockKey(voucherID), ClaimSetKey(voucherID), g.stream}
	code, err := seckillScript.Run(ctx, g.rdb, keys,
		strconv.FormatInt(userID, 10),
		strconv.FormatInt(voucherID, 10),
		strconv.FormatInt(orderID, 10),
	).Int64()
	if err != nil {
		return 0, errs.Wrap(err, "admission script failed")
	}
	result, err := voucher.ParseAdmissionResult(code)
	if err != nil {
		return 0, errs.Wrap(err, "admission script returned unexpected code")
	}
	return result, nil
}

// SeedStock opens a sale in the shared store: the counter is set to stock and
// any claims left over from a previous sale of the same voucher are dropped.
func (g *AdmissionGate) SeedStock(ctx context.Context, voucherID int64, stock int) error {
	_, err := g.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, StockKey(voucherID), stock, 0)
		pipe.Del(ctx, ClaimSetKey(voucherID))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to seed seckill stock")
	}
	return nil
}
