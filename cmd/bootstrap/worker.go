package bootstrap

import (
	"context"

	"voucher-seckill/internal/infra/metrics"
	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOrderWorker,
	),
	fx.Invoke(runOrderWorker),
)

func NewOrderWorker(
	cfg config.Config,
	stream *redisstore.OrderStream,
	lock *redisstore.UserLock,
	orders commands.OrderCommands,
	m *metrics.Metrics,
	clk clock.Clock,
) *worker.OrderWorker {
	return worker.NewOrderWorker(stream, lock, orders, m, clk, worker.Config{
		MaxDeliveries: cfg.Seckill.MaxDeliveries,
		RecoveryPause: cfg.Seckill.RecoveryPause,
	})
}

func runOrderWorker(lc fx.Lifecycle, w *worker.OrderWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
