//go:build unit

package commands_test

import (
	"context"
	"sync"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/db"
	"voucher-seckill/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory stand-in for the two tables. Within works on a
// copy and swaps it in only when fn succeeds, so failed callbacks roll back.
type memStore struct {
	mu       sync.Mutex
	orders   map[order.Key]*order.Order
	stock    map[int64]int64
	vouchers map[int64]*voucher.SeckillVoucher

	// hideOrders makes CountByUserAndVoucher report zero, simulating a
	// concurrent insert the current transaction cannot see yet.
	hideOrders bool
	calls      int

	// commitErrs is consumed one per Within call; a non-nil entry discards
	// the transaction after fn succeeded, as a failed COMMIT would.
	commitErrs []error
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[order.Key]*order.Order{},
		stock:    map[int64]int64{},
		vouchers: map[int64]*voucher.SeckillVoucher{},
	}
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	tx := &memTx{
		orders:     make(map[order.Key]*order.Order, len(s.orders)),
		stock:      make(map[int64]int64, len(s.stock)),
		vouchers:   make(map[int64]*voucher.SeckillVoucher, len(s.vouchers)),
		hideOrders: s.hideOrders,
	}
	for k, v := range s.orders {
		tx.orders[k] = v
	}
	for k, v := range s.stock {
		tx.stock[k] = v
	}
	for k, v := range s.vouchers {
		tx.vouchers[k] = v
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if len(s.commitErrs) > 0 {
		commitErr := s.commitErrs[0]
		s.commitErrs = s.commitErrs[1:]
		if commitErr != nil {
			return commitErr
		}
	}
	s.orders, s.stock, s.vouchers = tx.orders, tx.stock, tx.vouchers
	return nil
}

type memTx struct {
	orders     map[order.Key]*order.Order
	stock      map[int64]int64
	vouchers   map[int64]*voucher.SeckillVoucher
	hideOrders bool
}

func (t *memTx) Orders() shared.VoucherOrderRepository     { return memOrders{t} }
func (t *memTx) Vouchers() shared.SeckillVoucherRepository { return memVouchers{t} }
func (t *memTx) DB() db.DBTX                               { return nil }

type memOrders struct{ t *memTx }

func (r memOrders) CountByUserAndVoucher(_ context.Context, _ db.DBTX, userID, voucherID int64) (int64, error) {
	if r.t.hideOrders {
		return 0, nil
	}
	if _, ok := r.t.orders[order.Key{UserID: userID, VoucherID: voucherID}]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r memOrders) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	if _, ok := r.t.orders[o.Key()]; ok {
		return infra.WrapRepoErr("failed to create voucher order", &pgconn.PgError{Code: "23505"})
	}
	r.t.orders[o.Key()] = o
	return nil
}

type memVouchers struct{ t *memTx }

func (r memVouchers) Create(_ context.Context, _ db.DBTX, v *voucher.SeckillVoucher) error {
	if _, ok := r.t.vouchers[v.VoucherID()]; ok {
		return infra.WrapRepoErr("failed to create seckill voucher", &pgconn.PgError{Code: "23505"})
	}
	r.t.vouchers[v.VoucherID()] = v
	r.t.stock[v.VoucherID()] = int64(v.Stock())
	return nil
}

func (r memVouchers) Delete(_ context.Context, _ db.DBTX, voucherID int64) error {
	delete(r.t.vouchers, voucherID)
	delete(r.t.stock, voucherID)
	return nil
}

func (r memVouchers) DecrementStock(_ context.Context, _ db.DBTX, voucherID int64) (int64, error) {
	if r.t.stock[voucherID] <= 0 {
		return 0, nil
	}
	r.t.stock[voucherID]--
	return 1, nil
}

type fakeGate struct {
	result  voucher.AdmissionResult
	err     error
	seeded  map[int64]int
	seedErr error
	admits  []int64
}

func (g *fakeGate) Admit(_ context.Context, _, _, orderID int64) (voucher.AdmissionResult, error) {
	g.admits = append(g.admits, orderID)
	return g.result, g.err
}

func (g *fakeGate) SeedStock(_ context.Context, voucherID int64, stock int) error {
	if g.seedErr != nil {
		return g.seedErr
	}
	if g.seeded == nil {
		g.seeded = map[int64]int{}
	}
	g.seeded[voucherID] = stock
	return nil
}

type fakeIDs struct {
	next int64
	err  error
}

func (f *fakeIDs) NextID(context.Context, string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type recordingObserver struct{ results []string }

func (o *recordingObserver) Admission(result string) { o.results = append(o.results, result) }
