package queries

import (
	"context"
	"strconv"
	"time"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/errs"
)

// VoucherOrderView is the read model of a materialized order. IDs are rendered
// as strings because 64-bit order ids do not survive JSON number decoding in browsers.
type VoucherOrderView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VoucherID string    `json:"voucher_id"`
	Status    int16     `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type VoucherOrderQueries interface {
	// GetByID only returns orders owned by actor.
	GetByID(ctx context.Context, actor int64, id int64) (*VoucherOrderView, error)
}

type VoucherOrderViewRepo interface {
	FindByID(ctx context.Context, id int64) (*VoucherOrderView, error)
}

type voucherOrderQueriesImpl struct {
	repo VoucherOrderViewRepo
}

func NewVoucherOrderQueries(repo VoucherOrderViewRepo) VoucherOrderQueries {
	return &voucherOrderQueriesImpl{repo: repo}
}

func (q *voucherOrderQueriesImpl) GetByID(ctx context.Context, actor int64, id int64) (*VoucherOrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find voucher order")
	}
	// Not-owned orders are indistinguishable from missing ones.
	if view.UserID != strconv.FormatInt(actor, 10) {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}
