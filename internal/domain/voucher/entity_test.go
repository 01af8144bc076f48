//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"voucher-seckill/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeckillVoucher(t *testing.T) {
	begin := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(time.Hour)

	testCases := []struct {
		name      string
		voucherID int64
		stock     int
		begin     time.Time
		end       time.Time
		errIs     error
	}{
		{name: "valid", voucherID: 1, stock: 100, begin: begin, end: end},
		{name: "zero id", voucherID: 0, stock: 100, begin: begin, end: end, errIs: voucher.ErrInvalidVoucherID},
		{name: "zero stock", voucherID: 1, stock: 0, begin: begin, end: end, errIs: voucher.ErrInvalidStock},
		{name: "end before begin", voucherID: 1, stock: 1, begin: end, end: begin, errIs: voucher.ErrInvalidWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := voucher.NewSeckillVoucher(tc.voucherID, tc.stock, tc.begin, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stock, v.Stock())
		})
	}
}

func TestSeckillVoucher_HasEnded(t *testing.T) {
	begin := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	v := voucher.ReconstructSeckillVoucher(1, 10, begin, begin.Add(time.Hour))

	assert.False(t, v.HasEnded(begin.Add(-time.Second)))
	assert.False(t, v.HasEnded(begin.Add(59*time.Minute)))
	assert.True(t, v.HasEnded(begin.Add(time.Hour)))
}

func TestParseAdmissionResult(t *testing.T) {
	for code, want := range map[int64]voucher.AdmissionResult{0: voucher.Admitted, 1: voucher.NoStock, 2: voucher.Duplicate} {
		got, err := voucher.ParseAdmissionResult(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := voucher.ParseAdmissionResult(3)
	assert.Error(t, err)
}
