package commands

import (
	"context"
	"log/slog"
	"time"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"
)

type PublishSeckillVoucherInput struct {
	VoucherID int64
	Stock     int
	BeginTime time.Time
	EndTime   time.Time
}

type VoucherCommands interface {
	// PublishSeckillVoucher stores the stock row and opens admission for it.
	PublishSeckillVoucher(ctx context.Context, in PublishSeckillVoucherInput) error
}

type voucherUseCaseImpl struct {
	uow   shared.UnitOfWork
	gate  AdmissionGate
	clock clock.Clock
}

func NewVoucherUseCase(uow shared.UnitOfWork, gate AdmissionGate, clock clock.Clock) VoucherCommands {
	return &voucherUseCaseImpl{
		uow:   uow,
		gate:  gate,
		clock: clock,
	}
}

func (u *voucherUseCaseImpl) PublishSeckillVoucher(ctx context.Context, in PublishSeckillVoucherInput) error {
	v, err := voucher.NewSeckillVoucher(in.VoucherID, in.Stock, in.BeginTime, in.EndTime)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if v.HasEnded(u.clock.Now()) {
		return errs.Mark(errs.New("sale window already ended"), errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vouchers().Create(ctx, tx.DB(), v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrVoucherExists
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Stock goes live only once the row is committed.
	if err := u.gate.SeedStock(ctx, v.VoucherID(), v.Stock()); err != nil {
		return u.unpublish(ctx, v.VoucherID(), errs.Mark(err, errs.ErrAdmissionUnavailable))
	}
	return nil
}

// unpublish removes a committed voucher row whose stock never reached the
// admission store, so the publish can be retried.
func (u *voucherUseCaseImpl) unpublish(ctx context.Context, voucherID int64, cause error) error {
	err := u.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Vouchers().Delete(ctx, tx.DB(), voucherID)
	})
	if err != nil {
		slog.Error("voucher half-published: row stored but stock not seeded",
			"voucher_id", voucherID,
			"seed_error", cause.Error(),
			"delete_error", err.Error())
		return errs.Wrapf(cause, "voucher %d half-published: row stored, stock not seeded, cleanup failed: %v", voucherID, err)
	}
	return cause
}
