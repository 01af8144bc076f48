package commands

import (
	"context"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"
)

type CreateOutcome int

const (
	OrderCreated CreateOutcome = iota
	// OrderAlreadyExists: the (user, voucher) pair already has a row; nothing written.
	OrderAlreadyExists
	// OrderStockExhausted: the durable stock row had nothing left; nothing written.
	OrderStockExhausted
)

func (o CreateOutcome) String() string {
	switch o {
	case OrderCreated:
		return "created"
	case OrderAlreadyExists:
		return "duplicate"
	case OrderStockExhausted:
		return "no_stock"
	default:
		return "unknown"
	}
}

var errRolledBackDuplicate = errs.New("order inserted concurrently")

type OrderCommands interface {
	// CreateVoucherOrder is safe to call any number of times for the same order.
	CreateVoucherOrder(ctx context.Context, o *order.Order) (CreateOutcome, error)
}

type orderUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewOrderUseCase(uow shared.UnitOfWork) OrderCommands {
	return &orderUseCaseImpl{uow: uow}
}

func (u *orderUseCaseImpl) CreateVoucherOrder(ctx context.Context, o *order.Order) (CreateOutcome, error) {
	outcome := OrderCreated
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return createVoucherOrder(ctx, tx, o, &outcome)
	})
	if errs.Is(err, errRolledBackDuplicate) {
		return OrderAlreadyExists, nil
	}
	if err != nil {
		return 0, err
	}
	return outcome, nil
}

func createVoucherOrder(ctx context.Context, tx shared.Tx, o *order.Order, outcome *CreateOutcome) error {
	count, err := tx.Orders().CountByUserAndVoucher(ctx, tx.DB(), o.UserID(), o.VoucherID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if count > 0 {
		*outcome = OrderAlreadyExists
		return nil
	}

	affected, err := tx.Vouchers().DecrementStock(ctx, tx.DB(), o.VoucherID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		*outcome = OrderStockExhausted
		return nil
	}

	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		// A concurrent consumer won the unique index; undo our decrement.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errRolledBackDuplicate)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	*outcome = OrderCreated
	return nil
}
