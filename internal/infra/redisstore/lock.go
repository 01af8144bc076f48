package redisstore

import (
	"context"
	_ "embed"
	"time"

	"voucher-seckill/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed scripts/unlock.lua
var unlockSource string

var unlockScript = redis.NewScript(unlockSource)

// UserLock is a non-blocking, non-reentrant lease per user.
type UserLock struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewUserLock(rdb redis.UniversalClient, ttl time.Duration) *UserLock {
	return &UserLock{rdb: rdb, ttl: ttl}
}

// TryAcquire returns ok=false without error when another holder owns the lease.
func (l *UserLock) TryAcquire(ctx context.Context, userID int64) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, lockKey(userID), token, l.ttl).Result()
	if err != nil {
		return "", false, errs.Wrap(err, "failed to acquire user lock")
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release deletes the lease only while it is still held by token.
func (l *UserLock) Release(ctx context.Context, userID int64, token string) error {
	if err := unlockScript.Run(ctx, l.rdb, []string{lockKey(userID)}, token).Err(); err != nil {
		return errs.Wrap(err, "failed to release user lock")
	}
	return nil
}
