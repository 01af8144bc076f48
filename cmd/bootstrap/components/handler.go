package components

import (
	"context"
	"time"

	"voucher-seckill/internal/handler"
	"voucher-seckill/internal/handler/api"
	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/jwt"

	"go.uber.org/fx"
)

const rateLimitJanitorInterval = 2 * time.Minute

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVoucherOrderHandler,
		api.NewVoucherHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		func(orders *api.VoucherOrderHandler, vouchers *api.VoucherHandler) handler.Handlers {
			return handler.Handlers{VoucherOrders: orders, Vouchers: vouchers}
		},
		func(auth *middleware.AuthMiddleware, rl *middleware.RateLimiter) handler.Middlewares {
			return handler.Middlewares{Auth: auth, RateLimit: rl}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.StartJanitor(ctx, rateLimitJanitorInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return rl
}
