//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherUseCase_PublishSeckillVoucher(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	valid := commands.PublishSeckillVoucherInput{
		VoucherID: 7,
		Stock:     100,
		BeginTime: now,
		EndTime:   now.Add(time.Hour),
	}

	t.Run("success: row stored and stock seeded", func(t *testing.T) {
		store := newMemStore()
		gate := &fakeGate{}
		uc := commands.NewVoucherUseCase(store, gate, clock.NewMockClock(now))

		require.NoError(t, uc.PublishSeckillVoucher(ctx, valid))
		assert.Equal(t, int64(100), store.stock[7])
		assert.Equal(t, 100, gate.seeded[7])
	})

	t.Run("failure: already published", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewVoucherUseCase(store, &fakeGate{}, clock.NewMockClock(now))
		require.NoError(t, uc.PublishSeckillVoucher(ctx, valid))

		err := uc.PublishSeckillVoucher(ctx, valid)
		assert.True(t, errs.Is(err, errs.ErrVoucherExists))
	})

	t.Run("failure: seeding error removes the committed row", func(t *testing.T) {
		store := newMemStore()
		gate := &fakeGate{seedErr: errors.New("connection refused")}
		uc := commands.NewVoucherUseCase(store, gate, clock.NewMockClock(now))

		err := uc.PublishSeckillVoucher(ctx, valid)
		assert.True(t, errs.Is(err, errs.ErrAdmissionUnavailable))
		assert.Empty(t, store.vouchers)
		assert.Equal(t, 2, store.calls)
	})

	t.Run("failure: seeding error with failed cleanup reports half-published", func(t *testing.T) {
		store := newMemStore()
		store.commitErrs = []error{nil, errors.New("connection reset")}
		gate := &fakeGate{seedErr: errors.New("connection refused")}
		uc := commands.NewVoucherUseCase(store, gate, clock.NewMockClock(now))

		err := uc.PublishSeckillVoucher(ctx, valid)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAdmissionUnavailable))
		assert.Contains(t, err.Error(), "half-published")
		assert.Contains(t, store.vouchers, int64(7))
	})

	t.Run("failure: commit error never seeds stock", func(t *testing.T) {
		store := newMemStore()
		store.commitErrs = []error{errors.New("could not serialize access")}
		gate := &fakeGate{}
		uc := commands.NewVoucherUseCase(store, gate, clock.NewMockClock(now))

		err := uc.PublishSeckillVoucher(ctx, valid)
		require.Error(t, err)
		assert.Empty(t, store.vouchers)
		assert.Empty(t, gate.seeded)
	})

	t.Run("failure: window already ended", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewVoucherUseCase(store, &fakeGate{}, clock.NewMockClock(now.Add(2*time.Hour)))

		err := uc.PublishSeckillVoucher(ctx, valid)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("failure: non-positive stock", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewVoucherUseCase(store, &fakeGate{}, clock.NewMockClock(now))
		in := valid
		in.Stock = 0

		err := uc.PublishSeckillVoucher(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
