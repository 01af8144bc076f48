package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

type Stream interface {
	EnsureGroup(ctx context.Context) error
	ReadNew(ctx context.Context) (*redis.XMessage, error)
	ReadPending(ctx context.Context) (*redis.XMessage, error)
	Ack(ctx context.Context, messageID string) error
	DeliveryCount(ctx context.Context, messageID string) (int64, error)
	DeadLetter(ctx context.Context, msg redis.XMessage, reason string) error
}

type Locker interface {
	TryAcquire(ctx context.Context, userID int64) (string, bool, error)
	Release(ctx context.Context, userID int64, token string) error
}

type Observer interface {
	WorkerOutcome(outcome string)
	Recovery()
	DeadLettered()
}

type Config struct {
	// MaxDeliveries > 0 quarantines a pending record once it has been delivered
	// more than MaxDeliveries times, and a malformed record on first sight.
	// Zero retries forever.
	MaxDeliveries int64
	RecoveryPause time.Duration
}

// OrderWorker drains the intake queue into the orders table, one record at a time.
type OrderWorker struct {
	stream   Stream
	lock     Locker
	orders   commands.OrderCommands
	observer Observer
	clock    clock.Clock
	cfg      Config

	state atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewOrderWorker(
	stream Stream,
	lock Locker,
	orders commands.OrderCommands,
	observer Observer,
	clock clock.Clock,
	cfg Config,
) *OrderWorker {
	w := &OrderWorker{
		stream:   stream,
		lock:     lock,
		orders:   orders,
		observer: observer,
		clock:    clock,
		cfg:      cfg,
	}
	w.state.Store(int32(StateStopped))
	return w
}

func (w *OrderWorker) State() State {
	return State(w.state.Load())
}

func (w *OrderWorker) setState(s State) {
	w.state.Store(int32(s))
}

// Start runs the loop on its own goroutine until Stop is called.
func (w *OrderWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		if err := w.Run(ctx); err != nil {
			slog.Error("order worker exited", "error", err.Error())
		}
	}(w.done)
}

// Stop cancels the loop and waits for it to return. A record in flight at that
// moment is abandoned unacknowledged and stays pending for the next start.
func (w *OrderWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if done == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run blocks until ctx is cancelled. Records left pending by an earlier
// crash are replayed before new records are fetched.
func (w *OrderWorker) Run(ctx context.Context) error {
	defer w.setState(StateStopped)

	if err := w.stream.EnsureGroup(ctx); err != nil {
		return err
	}
	slog.Info("order worker started")

	w.drainPending(ctx)

	for ctx.Err() == nil {
		w.setState(StateFetching)
		msg, err := w.stream.ReadNew(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Error("order stream read failed", "error", err.Error())
			w.drainPending(ctx)
			continue
		}
		if msg == nil {
			w.setState(StateIdle)
			continue
		}

		if err := w.process(ctx, *msg); err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Error("order record processing failed",
				"message_id", msg.ID,
				"error", err.Error())
			w.observer.WorkerOutcome("failed")
			w.drainPending(ctx)
		}
		w.setState(StateIdle)
	}

	slog.Info("order worker stopped")
	return nil
}

// drainPending replays this consumer's unacknowledged records until none are left.
// Failures are logged and retried after a pause; the loop only ends when the
// pending list is empty or ctx is cancelled. A recovery is counted only when
// there was something to replay.
func (w *OrderWorker) drainPending(ctx context.Context) {
	w.setState(StateRecovering)
	counted := false

	for ctx.Err() == nil {
		msg, err := w.stream.ReadPending(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("pending list read failed", "error", err.Error())
			w.pause(ctx)
			continue
		}
		if msg == nil {
			return
		}
		if !counted {
			w.observer.Recovery()
			counted = true
		}

		// Entry deleted from the stream while still pending.
		if len(msg.Values) == 0 {
			if err := w.stream.Ack(ctx, msg.ID); err != nil {
				slog.Error("ack of deleted entry failed", "message_id", msg.ID, "error", err.Error())
				w.pause(ctx)
			}
			continue
		}

		if w.cfg.MaxDeliveries > 0 {
			quarantined, err := w.quarantineIfExhausted(ctx, *msg)
			if err != nil {
				slog.Error("dead-letter check failed", "message_id", msg.ID, "error", err.Error())
				w.pause(ctx)
				continue
			}
			if quarantined {
				continue
			}
		}

		if err := w.process(ctx, *msg); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("pending record processing failed",
				"message_id", msg.ID,
				"error", err.Error())
			w.observer.WorkerOutcome("failed")
			w.pause(ctx)
		}
		w.setState(StateRecovering)
	}
}

func (w *OrderWorker) quarantineIfExhausted(ctx context.Context, msg redis.XMessage) (bool, error) {
	deliveries, err := w.stream.DeliveryCount(ctx, msg.ID)
	if err != nil {
		return false, err
	}
	if deliveries <= w.cfg.MaxDeliveries {
		return false, nil
	}

	if err := w.stream.DeadLetter(ctx, msg, "max deliveries exceeded"); err != nil {
		return false, err
	}
	slog.Error("order record dead-lettered",
		"message_id", msg.ID,
		"deliveries", deliveries,
		"values", msg.Values)
	w.observer.DeadLettered()
	return true, nil
}

// process materializes one record and acknowledges it. The ack happens only
// after the order write returned, so a crash in between leaves the record pending.
func (w *OrderWorker) process(ctx context.Context, msg redis.XMessage) error {
	w.setState(StateProcessing)

	o, err := decodeOrder(msg, w.clock.Now())
	if err != nil {
		// Without a redelivery bound the record stays pending like any other failure.
		if w.cfg.MaxDeliveries <= 0 {
			return err
		}
		slog.Error("malformed order record",
			"message_id", msg.ID,
			"values", msg.Values,
			"error", err.Error())
		if err := w.stream.DeadLetter(ctx, msg, "malformed"); err != nil {
			return err
		}
		w.observer.DeadLettered()
		w.observer.WorkerOutcome("malformed")
		return nil
	}

	outcome, err := w.createLocked(ctx, o)
	if err != nil {
		return err
	}
	w.observer.WorkerOutcome(outcome)

	w.setState(StateAcking)
	return w.stream.Ack(ctx, msg.ID)
}

func decodeOrder(msg redis.XMessage, now time.Time) (*order.Order, error) {
	rec, err := redisstore.DecodeOrderRecord(msg)
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(rec.OrderID, rec.UserID, rec.VoucherID, now)
	if err != nil {
		return nil, errs.Mark(err, redisstore.ErrMalformedRecord)
	}
	return o, nil
}

func (w *OrderWorker) createLocked(ctx context.Context, o *order.Order) (string, error) {
	token, ok, err := w.lock.TryAcquire(ctx, o.UserID())
	if err != nil {
		return "", err
	}
	if !ok {
		slog.Warn("order already in flight for user, dropping record",
			"order_id", o.ID(),
			"user_id", o.UserID(),
			"voucher_id", o.VoucherID())
		return "lock_contended", nil
	}
	defer func() {
		if err := w.lock.Release(context.WithoutCancel(ctx), o.UserID(), token); err != nil {
			slog.Warn("user lock release failed", "user_id", o.UserID(), "error", err.Error())
		}
	}()

	outcome, err := w.orders.CreateVoucherOrder(ctx, o)
	if err != nil {
		return "", err
	}
	if outcome != commands.OrderCreated {
		slog.Warn("order not created",
			"order_id", o.ID(),
			"user_id", o.UserID(),
			"voucher_id", o.VoucherID(),
			"outcome", outcome.String())
	}
	return outcome.String(), nil
}

func (w *OrderWorker) pause(ctx context.Context) {
	if w.cfg.RecoveryPause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(w.cfg.RecoveryPause):
	}
}
