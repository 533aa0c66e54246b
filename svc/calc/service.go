package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/strcalc/pkg/cache"
	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/logger"
)

// Config holds the service limits.
type Config struct {
	MaxInputBytes    int `env:"MAX_INPUT_BYTES" envDefault:"65536"`
	MaxBatchSize     int `env:"MAX_BATCH_SIZE" envDefault:"100"`
	BatchConcurrency int `env:"BATCH_CONCURRENCY" envDefault:"8"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{MaxInputBytes: 64 << 10, MaxBatchSize: 100, BatchConcurrency: 8}
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCache sets the result store. Nil is ignored.
func WithCache(c cache.Store[Result]) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// Service evaluates calculator inputs.
type Service struct {
	cfg   Config
	log   *slog.Logger
	cache cache.Store[Result]
}

// New creates a Service. Without WithCache nothing is cached.
func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.MaxInputBytes <= 0 || cfg.MaxBatchSize <= 0 || cfg.BatchConcurrency <= 0 {
		return nil, fmt.Errorf("%w: limits must be positive: %+v", ErrInvalidConfig, cfg)
	}

	s := &Service{
		cfg:   cfg,
		log:   logger.Discard(),
		cache: cache.Noop[Result]{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("calc"))
	return s, nil
}

// Add validates req and evaluates it. A rejected input is reported in
// Result.Failure with a nil error.
func (s *Service) Add(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(s.cfg.MaxInputBytes); err != nil {
		return Result{}, err
	}
	return s.add(ctx, req)
}

// AddBatch evaluates every request with at most BatchConcurrency running at
// once. Results keep the order of reqs. The batch fails as a whole only when
// it is invalid or ctx is cancelled.
func (s *Service) AddBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	if err := (BatchRequest{Items: reqs}).Validate(s.cfg.MaxBatchSize, s.cfg.MaxInputBytes); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := s.add(gctx, req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "batch evaluated",
		logger.BatchSize(len(reqs)),
		logger.Duration(time.Since(start)),
	)
	return results, nil
}

func (s *Service) add(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	key := cacheKey(req)
	if res, ok := s.lookup(ctx, key); ok {
		return res, nil
	}

	start := time.Now()
	sum, err := calculator.Add(req.Numbers, req.Delimiters...)
	res := Result{Input: req.Numbers, Sum: sum}
	if err != nil {
		addErr, ok := calculator.AsAddError(err)
		if !ok {
			s.log.ErrorContext(ctx, "calculator failed", logger.Input(req.Numbers), logger.Error(err))
			return Result{}, errors.Join(ErrUnexpectedFailure, err)
		}
		res.Failure = newFailure(addErr)
		s.log.InfoContext(ctx, "input rejected",
			logger.Input(req.Numbers),
			logger.ErrorKind(string(addErr.Kind())),
			logger.CacheHit(false),
			logger.Duration(time.Since(start)),
		)
	} else {
		s.log.DebugContext(ctx, "numbers added",
			logger.Input(req.Numbers),
			logger.Sum(sum),
			logger.CacheHit(false),
			logger.Duration(time.Since(start)),
		)
	}

	if err := s.cache.Set(ctx, key, res); err != nil {
		s.log.WarnContext(ctx, "cache write failed", logger.Error(err))
	}
	return res, nil
}

// lookup treats cache failures as misses.
func (s *Service) lookup(ctx context.Context, key string) (Result, bool) {
	res, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "cache read failed", logger.Error(err))
		return Result{}, false
	}
	if ok {
		s.log.DebugContext(ctx, "result served from cache",
			logger.Input(res.Input),
			logger.CacheHit(true),
		)
	}
	return res, ok
}

func cacheKey(req Request) string {
	parts := make([]string, 0, 1+len(req.Delimiters))
	parts = append(parts, req.Numbers)
	return cache.Key(append(parts, req.Delimiters...)...)
}

func itemPrefix(i int) string {
	return fmt.Sprintf("items[%d].", i)
}
