package order

import (
	"errors"
	"time"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidVoucherID = errors.New("invalid voucher id")
)

type Status int16

const (
	StatusUnpaid Status = 1
)

// Order is a materialized seckill purchase. Rows are written once by the
// order worker and never mutated by this service.
type Order struct {
	id        int64
	userID    int64
	voucherID int64
	status    Status
	createdAt time.Time
}

func NewOrder(id, userID, voucherID int64, createdAt time.Time) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if voucherID <= 0 {
		return nil, ErrInvalidVoucherID
	}
	return &Order{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		status:    StatusUnpaid,
		createdAt: createdAt,
	}, nil
}

func ReconstructOrder(id, userID, voucherID int64, status Status, createdAt time.Time) *Order {
	return &Order{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		status:    status,
		createdAt: createdAt,
	}
}

// Key identifies the (user, voucher) pair that may own at most one order.
func (o *Order) Key() Key { return Key{UserID: o.userID, VoucherID: o.voucherID} }

func (o *Order) ID() int64            { return o.id }
func (o *Order) UserID() int64        { return o.userID }
func (o *Order) VoucherID() int64     { return o.voucherID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

type Key struct {
	UserID    int64
	VoucherID int64
}
