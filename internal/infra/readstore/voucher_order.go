package readstore

import (
	"context"
	"strconv"
	"time"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/db"
	"voucher-seckill/internal/usecase/queries"
)

type VoucherOrderReadStore struct {
	db db.DBTX
}

func NewVoucherOrderReadStore(db db.DBTX) *VoucherOrderReadStore {
	return &VoucherOrderReadStore{db: db}
}

func (r *VoucherOrderReadStore) FindByID(ctx context.Context, id int64) (*queries.VoucherOrderView, error) {
	const query = `SELECT id, user_id, voucher_id, status, created_at FROM voucher_orders WHERE id = $1`

	var (
		orderID, userID, voucherID int64
		status                     int16
		createdAt                  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&orderID, &userID, &voucherID, &status, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find voucher order by ID", err)
	}

	return &queries.VoucherOrderView{
		ID:        strconv.FormatInt(orderID, 10),
		UserID:    strconv.FormatInt(userID, 10),
		VoucherID: strconv.FormatInt(voucherID, 10),
		Status:    status,
		CreatedAt: createdAt,
	}, nil
}
