package repository

import (
	"context"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/db"
)

type SeckillVoucherRepository struct{}

func NewSeckillVoucherRepository() *SeckillVoucherRepository {
	return &SeckillVoucherRepository{}
}

func (r *SeckillVoucherRepository) Create(ctx context.Context, tx db.DBTX, v *voucher.SeckillVoucher) error {
	const stmt = `
INSERT INTO seckill_vouchers (voucher_id, stock, begin_time, end_time)
VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, stmt, v.VoucherID(), v.Stock(), v.BeginTime(), v.EndTime())
	if err != nil {
		return infra.WrapRepoErr("failed to create seckill voucher", err)
	}
	return nil
}

func (r *SeckillVoucherRepository) Delete(ctx context.Context, tx db.DBTX, voucherID int64) error {
	const stmt = `DELETE FROM seckill_vouchers WHERE voucher_id = $1`

	if _, err := tx.Exec(ctx, stmt, voucherID); err != nil {
		return infra.WrapRepoErr("failed to delete seckill voucher", err)
	}
	return nil
}

func (r *SeckillVoucherRepository) DecrementStock(ctx context.Context, tx db.DBTX, voucherID int64) (int64, error) {
	const stmt = `
UPDATE seckill_vouchers
SET stock = stock - 1, updated_at = NOW()
WHERE voucher_id = $1 AND stock > 0`

	tag, err := tx.Exec(ctx, stmt, voucherID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement seckill stock", err)
	}
	return tag.RowsAffected(), nil
}
