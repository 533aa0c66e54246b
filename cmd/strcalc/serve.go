package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strcalc/pkg/environment"
	"github.com/dmitrymomot/strcalc/pkg/httpserver"
	"github.com/dmitrymomot/strcalc/pkg/logger"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator over HTTP.

Routes:
  POST /v1/add        {"numbers": "1,2", "delimiters": [";"]}
  POST /v1/add/batch  {"items": [{"numbers": "1,2"}, ...]}
  GET  /health/live
  GET  /health/ready

Configuration is read from the environment (APP_*, LOG_*, CACHE_*, HTTP_*,
REDIS_*, MAX_INPUT_BYTES, MAX_BATCH_SIZE, BATCH_CONCURRENCY).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg, os.Stdout)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			results, err := newResultStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := results.close(); err != nil {
					log.Warn("cache close failed", logger.Error(err))
				}
			}()

			svc, err := calc.New(cfg.Calc, calc.WithLogger(log), calc.WithCache(results.store))
			if err != nil {
				return err
			}

			router := calc.Router(svc, calc.RouterOptions{
				Logger:      log,
				Readiness:   results.readiness,
				Middlewares: []func(http.Handler) http.Handler{environment.Middleware(environment.Parse(cfg.AppEnv))},
			})

			log.Info("starting strcalc",
				slog.String("addr", cfg.HTTP.Addr),
				slog.String("cache_driver", cfg.CacheDriver),
			)
			return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
