//go:build unit

package order_test

import (
	"testing"
	"time"

	"voucher-seckill/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid order starts unpaid", func(t *testing.T) {
		o, err := order.NewOrder(101, 7, 3, now)
		require.NoError(t, err)

		expected := order.ReconstructOrder(101, 7, 3, order.StatusUnpaid, now)
		if diff := cmp.Diff(expected, o, cmp.AllowUnexported(order.Order{})); diff != "" {
			t.Errorf("Order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, order.Key{UserID: 7, VoucherID: 3}, o.Key())
	})

	testCases := []struct {
		name                  string
		id, userID, voucherID int64
		errIs                 error
	}{
		{name: "zero order id", id: 0, userID: 7, voucherID: 3, errIs: order.ErrInvalidOrderID},
		{name: "negative user id", id: 1, userID: -1, voucherID: 3, errIs: order.ErrInvalidUserID},
		{name: "zero voucher id", id: 1, userID: 7, voucherID: 0, errIs: order.ErrInvalidVoucherID},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.NewOrder(tc.id, tc.userID, tc.voucherID, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
