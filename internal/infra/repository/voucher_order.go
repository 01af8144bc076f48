package repository

import (
	"context"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/db"
)

type VoucherOrderRepository struct{}

func NewVoucherOrderRepository() *VoucherOrderRepository {
	return &VoucherOrderRepository{}
}

func (r *VoucherOrderRepository) CountByUserAndVoucher(ctx context.Context, tx db.DBTX, userID, voucherID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM voucher_orders WHERE user_id = $1 AND voucher_id = $2`

	var count int64
	if err := tx.QueryRow(ctx, query, userID, voucherID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count voucher orders", err)
	}
	return count, nil
}

func (r *VoucherOrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	const stmt = `
INSERT INTO voucher_orders (id, user_id, voucher_id, status, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, stmt, o.ID(), o.UserID(), o.VoucherID(), int16(o.Status()), o.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create voucher order", err)
	}
	return nil
}
