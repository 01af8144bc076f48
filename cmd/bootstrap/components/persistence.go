package components

import (
	"voucher-seckill/internal/infra/db"
	"voucher-seckill/internal/infra/readstore"
	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/infra/uow"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	seckillStoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewVoucherOrderReadStore,
			fx.As(new(queries.VoucherOrderViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork hands out the order and voucher repositories per transaction
		uow.NewPostgresUoW,
	),
)

var seckillStoreModule = fx.Module("persistence/seckill",
	fx.Provide(
		fx.Annotate(
			NewAdmissionGate,
			fx.As(new(commands.AdmissionGate)),
		),
		fx.Annotate(
			NewIDWorker,
			fx.As(new(commands.IDGenerator)),
		),
		NewUserLock,
		NewOrderStream,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAdmissionGate(rdb redis.UniversalClient, cfg config.Config) *redisstore.AdmissionGate {
	return redisstore.NewAdmissionGate(rdb, cfg.Seckill.Stream)
}

func NewIDWorker(rdb redis.UniversalClient, cfg config.Config, clk clock.Clock) *redisstore.IDWorker {
	return redisstore.NewIDWorker(rdb, clk, cfg.Seckill.IDEpoch)
}

func NewUserLock(rdb redis.UniversalClient, cfg config.Config) *redisstore.UserLock {
	return redisstore.NewUserLock(rdb, cfg.Seckill.LockTTL)
}

func NewOrderStream(rdb redis.UniversalClient, cfg config.Config) *redisstore.OrderStream {
	return redisstore.NewOrderStream(rdb, redisstore.StreamConfig{
		Stream:           cfg.Seckill.Stream,
		Group:            cfg.Seckill.Group,
		Consumer:         cfg.Seckill.Consumer,
		Block:            cfg.Seckill.ReadBlock,
		DeadLetterStream: cfg.Seckill.DeadLetterStream,
	})
}
