package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcalc/pkg/cache"
	"github.com/dmitrymomot/strcalc/pkg/config"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

func TestLoadConfig(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CACHE_DRIVER", "none")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MAX_BATCH_SIZE", "7")
	t.Setenv("HTTP_ADDR", ":9999")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.CacheDriver)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 7, cfg.Calc.MaxBatchSize)
	assert.Equal(t, 8, cfg.Calc.BatchConcurrency)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, "strcalc", cfg.AppName)
}

func TestNewLogger(t *testing.T) {
	t.Run("overrides the environment defaults", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(appConfig{AppEnv: "production", AppName: "strcalc", LogLevel: "debug", LogFormat: "text"}, &buf)
		require.NoError(t, err)

		log.Debug("hello")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=strcalc")
	})

	t.Run("rejects bad values", func(t *testing.T) {
		_, err := newLogger(appConfig{LogLevel: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)

		_, err = newLogger(appConfig{LogFormat: "xml"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestNewResultStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		rs, err := newResultStore(ctx, appConfig{CacheDriver: cacheMemory, CacheSize: 8})
		require.NoError(t, err)
		assert.IsType(t, &cache.Memory[calc.Result]{}, rs.store)
		assert.Empty(t, rs.readiness)
		assert.NoError(t, rs.close())
	})

	t.Run("none", func(t *testing.T) {
		rs, err := newResultStore(ctx, appConfig{CacheDriver: cacheNone})
		require.NoError(t, err)
		assert.IsType(t, cache.Noop[calc.Result]{}, rs.store)
	})

	t.Run("invalid memory size", func(t *testing.T) {
		_, err := newResultStore(ctx, appConfig{CacheDriver: cacheMemory})
		assert.ErrorIs(t, err, cache.ErrInvalidSize)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := newResultStore(ctx, appConfig{CacheDriver: "memcached"})
		assert.ErrorIs(t, err, errUnknownCacheDriver)
	})
}
