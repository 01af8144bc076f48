package voucher

import (
	"errors"
	"time"
)

var (
	ErrInvalidVoucherID = errors.New("invalid voucher id")
	ErrInvalidStock     = errors.New("stock must be positive")
	ErrInvalidWindow    = errors.New("sale window end must be after begin")
)

// SeckillVoucher is the durable stock row of a flash-sale voucher.
type SeckillVoucher struct {
	voucherID int64
	stock     int
	beginTime time.Time
	endTime   time.Time
}

func NewSeckillVoucher(voucherID int64, stock int, beginTime, endTime time.Time) (*SeckillVoucher, error) {
	if voucherID <= 0 {
		return nil, ErrInvalidVoucherID
	}
	if stock <= 0 {
		return nil, ErrInvalidStock
	}
	if !endTime.After(beginTime) {
		return nil, ErrInvalidWindow
	}
	return &SeckillVoucher{
		voucherID: voucherID,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
	}, nil
}

func ReconstructSeckillVoucher(voucherID int64, stock int, beginTime, endTime time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		voucherID: voucherID,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
	}
}

// HasEnded reports whether the sale window is already closed at now.
func (v *SeckillVoucher) HasEnded(now time.Time) bool {
	return !now.Before(v.endTime)
}

func (v *SeckillVoucher) VoucherID() int64     { return v.voucherID }
func (v *SeckillVoucher) Stock() int           { return v.stock }
func (v *SeckillVoucher) BeginTime() time.Time { return v.beginTime }
func (v *SeckillVoucher) EndTime() time.Time   { return v.endTime }
