package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Seckill   SeckillConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"100"`
}

// SeckillConfig holds the fixed queue identities and worker timings.
// Consumer group and consumer names are process configuration, never per request.
type SeckillConfig struct {
	Stream           string        `envconfig:"SECKILL_STREAM" default:"stream.orders"`
	Group            string        `envconfig:"SECKILL_GROUP" default:"g1"`
	Consumer         string        `envconfig:"SECKILL_CONSUMER" default:"c1"`
	ReadBlock        time.Duration `envconfig:"SECKILL_READ_BLOCK" default:"2s"`
	LockTTL          time.Duration `envconfig:"SECKILL_LOCK_TTL" default:"10s"`
	MaxDeliveries    int64         `envconfig:"SECKILL_MAX_DELIVERIES" default:"0"` // 0 = retry forever
	DeadLetterStream string        `envconfig:"SECKILL_DEAD_LETTER_STREAM" default:"stream.orders.dlq"`
	RecoveryPause    time.Duration `envconfig:"SECKILL_RECOVERY_PAUSE" default:"200ms"`
	IDEpoch          int64         `envconfig:"SECKILL_ID_EPOCH" default:"1640995200"` // 2022-01-01T00:00:00Z
}

type RateLimitConfig struct {
	RPS     float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"15m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Shanghai",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			PoolSize: 10,
		},
		Seckill: SeckillConfig{
			Stream:           "stream.orders",
			Group:            "g1",
			Consumer:         "c1",
			ReadBlock:        100 * time.Millisecond,
			LockTTL:          5 * time.Second,
			DeadLetterStream: "stream.orders.dlq",
			RecoveryPause:    10 * time.Millisecond,
			IDEpoch:          1640995200,
		},
		RateLimit: RateLimitConfig{
			RPS:     1000,
			Burst:   1000,
			IdleTTL: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}
