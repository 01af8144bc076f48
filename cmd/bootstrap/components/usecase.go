package components

import (
	"voucher-seckill/internal/infra/metrics"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(m *metrics.Metrics) commands.AdmissionObserver { return m },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSeckillUseCase,
		commands.NewVoucherUseCase,
		commands.NewOrderUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherOrderQueries,
	),
)
