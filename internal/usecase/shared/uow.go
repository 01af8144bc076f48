package shared

import (
	"context"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra/db"
)

// UnitOfWork makes the transaction boundary explicit: repositories never open
// transactions themselves, they receive the handle from Within.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Orders() VoucherOrderRepository
	Vouchers() SeckillVoucherRepository
	DB() db.DBTX
}

type VoucherOrderRepository interface {
	CountByUserAndVoucher(ctx context.Context, tx db.DBTX, userID, voucherID int64) (int64, error)
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
}

type SeckillVoucherRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *voucher.SeckillVoucher) error
	// DecrementStock applies "stock = stock - 1 WHERE voucher_id = ? AND stock > 0"
	// and returns the affected row count.
	DecrementStock(ctx context.Context, tx db.DBTX, voucherID int64) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, voucherID int64) error
}
