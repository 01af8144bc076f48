package commands

import (
	"context"

	"voucher-seckill/internal/domain/voucher"
)

// AdmissionGate is the atomic stock/claim/enqueue step on the shared store.
type AdmissionGate interface {
	Admit(ctx context.Context, voucherID, userID, orderID int64) (voucher.AdmissionResult, error)
	SeedStock(ctx context.Context, voucherID int64, stock int) error
}

type IDGenerator interface {
	NextID(ctx context.Context, keyPrefix string) (int64, error)
}

type AdmissionObserver interface {
	Admission(result string)
}
