package commands

import (
	"context"
	"log/slog"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/pkg/errs"
)

const orderIDKey = "order"

type SeckillCommands interface {
	// Seckill admits userID for voucherID and returns the reserved order id.
	// The order row is written later by the order worker.
	Seckill(ctx context.Context, voucherID, userID int64) (int64, error)
}

type seckillUseCaseImpl struct {
	gate     AdmissionGate
	ids      IDGenerator
	observer AdmissionObserver
}

func NewSeckillUseCase(gate AdmissionGate, ids IDGenerator, observer AdmissionObserver) SeckillCommands {
	return &seckillUseCaseImpl{
		gate:     gate,
		ids:      ids,
		observer: observer,
	}
}

func (u *seckillUseCaseImpl) Seckill(ctx context.Context, voucherID, userID int64) (int64, error) {
	if voucherID <= 0 || userID <= 0 {
		return 0, errs.ErrDomainValidation
	}

	orderID, err := u.ids.NextID(ctx, orderIDKey)
	if err != nil {
		slog.Error("order id generation failed", "voucher_id", voucherID, "error", err.Error())
		return 0, errs.Mark(err, errs.ErrAdmissionUnavailable)
	}

	result, err := u.gate.Admit(ctx, voucherID, userID, orderID)
	if err != nil {
		slog.Error("admission gate failed", "voucher_id", voucherID, "user_id", userID, "error", err.Error())
		return 0, errs.Mark(err, errs.ErrAdmissionUnavailable)
	}
	u.observer.Admission(result.String())

	switch result {
	case voucher.Admitted:
		return orderID, nil
	case voucher.NoStock:
		return 0, errs.ErrNoStock
	default:
		return 0, errs.ErrDuplicateOrder
	}
}
