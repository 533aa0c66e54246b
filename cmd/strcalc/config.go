package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/strcalc/pkg/cache"
	"github.com/dmitrymomot/strcalc/pkg/config"
	"github.com/dmitrymomot/strcalc/pkg/httpserver"
	"github.com/dmitrymomot/strcalc/pkg/logger"
	"github.com/dmitrymomot/strcalc/pkg/redis"
	"github.com/dmitrymomot/strcalc/pkg/requestid"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

// Cache drivers accepted by CACHE_DRIVER.
const (
	cacheMemory = "memory"
	cacheRedis  = "redis"
	cacheNone   = "none"
)

var errUnknownCacheDriver = errors.New("unknown cache driver")

// appConfig is the process configuration, read from the environment.
type appConfig struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"strcalc"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	CacheDriver string        `env:"CACHE_DRIVER" envDefault:"memory"`
	CacheSize   int           `env:"CACHE_SIZE" envDefault:"4096"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	Calc  calc.Config
	HTTP  httpserver.Config
	Redis redis.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. LOG_LEVEL and LOG_FORMAT override the
// environment defaults (debug text in development, info JSON in production).
func newLogger(cfg appConfig, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// resultStore is the configured cache plus its readiness probes and cleanup.
type resultStore struct {
	store     cache.Store[calc.Result]
	readiness []func(context.Context) error
	close     func() error
}

func newResultStore(ctx context.Context, cfg appConfig) (resultStore, error) {
	switch cfg.CacheDriver {
	case cacheMemory:
		store, err := cache.NewMemory[calc.Result](cfg.CacheSize, cfg.CacheTTL)
		if err != nil {
			return resultStore{}, err
		}
		return resultStore{store: store, close: func() error { return nil }}, nil

	case cacheRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return resultStore{}, err
		}
		store, err := cache.NewRedis[calc.Result](client, cfg.AppName+":calc:", cfg.CacheTTL)
		if err != nil {
			_ = client.Close()
			return resultStore{}, err
		}
		return resultStore{
			store:     store,
			readiness: []func(context.Context) error{redis.Healthcheck(client)},
			close:     client.Close,
		}, nil

	case cacheNone, "":
		return resultStore{store: cache.Noop[calc.Result]{}, close: func() error { return nil }}, nil

	default:
		return resultStore{}, fmt.Errorf("%w: %q (want %s, %s or %s)", errUnknownCacheDriver, cfg.CacheDriver, cacheMemory, cacheRedis, cacheNone)
	}
}
