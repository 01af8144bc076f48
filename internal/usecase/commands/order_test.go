//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id, userID, voucherID int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, userID, voucherID, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestOrderUseCase_CreateVoucherOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inserts order and decrements stock once", func(t *testing.T) {
		store := newMemStore()
		store.stock[7] = 3
		uc := commands.NewOrderUseCase(store)

		outcome, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 100, 42, 7))
		require.NoError(t, err)
		assert.Equal(t, commands.OrderCreated, outcome)
		assert.Len(t, store.orders, 1)
		assert.Equal(t, int64(2), store.stock[7])
	})

	t.Run("idempotent: second call is a no-op", func(t *testing.T) {
		store := newMemStore()
		store.stock[7] = 3
		uc := commands.NewOrderUseCase(store)
		o := newTestOrder(t, 100, 42, 7)

		_, err := uc.CreateVoucherOrder(ctx, o)
		require.NoError(t, err)

		outcome, err := uc.CreateVoucherOrder(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, commands.OrderAlreadyExists, outcome)
		assert.Len(t, store.orders, 1)
		assert.Equal(t, int64(2), store.stock[7])
	})

	t.Run("idempotent: different order id for same user and voucher", func(t *testing.T) {
		store := newMemStore()
		store.stock[7] = 3
		uc := commands.NewOrderUseCase(store)

		_, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 100, 42, 7))
		require.NoError(t, err)
		outcome, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 101, 42, 7))
		require.NoError(t, err)
		assert.Equal(t, commands.OrderAlreadyExists, outcome)
		assert.Equal(t, int64(2), store.stock[7])
	})

	t.Run("stock exhausted: nothing written", func(t *testing.T) {
		store := newMemStore()
		store.stock[7] = 0
		uc := commands.NewOrderUseCase(store)

		outcome, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 100, 42, 7))
		require.NoError(t, err)
		assert.Equal(t, commands.OrderStockExhausted, outcome)
		assert.Empty(t, store.orders)
		assert.Equal(t, int64(0), store.stock[7])
	})

	t.Run("unique violation: decrement rolled back, reported as duplicate", func(t *testing.T) {
		store := newMemStore()
		store.stock[7] = 3
		uc := commands.NewOrderUseCase(store)

		_, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 100, 42, 7))
		require.NoError(t, err)

		store.hideOrders = true
		outcome, err := uc.CreateVoucherOrder(ctx, newTestOrder(t, 101, 42, 7))
		require.NoError(t, err)
		assert.Equal(t, commands.OrderAlreadyExists, outcome)
		assert.Len(t, store.orders, 1)
		assert.Equal(t, int64(2), store.stock[7])
	})
}

func TestCreateOutcome_String(t *testing.T) {
	assert.Equal(t, "created", commands.OrderCreated.String())
	assert.Equal(t, "duplicate", commands.OrderAlreadyExists.String())
	assert.Equal(t, "no_stock", commands.OrderStockExhausted.String())
}
