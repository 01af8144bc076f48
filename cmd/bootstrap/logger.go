package bootstrap

import (
	"log/slog"

	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog.Default, which the worker and
// the persistence layer log through.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
