package calc_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcalc/pkg/cache"
	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/validator"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

// countingStore records cache traffic on top of a memory store.
type countingStore struct {
	cache.Store[calc.Result]
	hits, sets atomic.Int32
}

func (c *countingStore) Get(ctx context.Context, key string) (calc.Result, bool, error) {
	v, ok, err := c.Store.Get(ctx, key)
	if ok {
		c.hits.Add(1)
	}
	return v, ok, err
}

func (c *countingStore) Set(ctx context.Context, key string, v calc.Result) error {
	c.sets.Add(1)
	return c.Store.Set(ctx, key, v)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, key string) (calc.Result, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(calc.Result), args.Bool(1), args.Error(2)
}

func (m *mockStore) Set(ctx context.Context, key string, v calc.Result) error {
	return m.Called(ctx, key, v).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockStore) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newStore(t *testing.T) *countingStore {
	t.Helper()
	mem, err := cache.NewMemory[calc.Result](64, 0)
	require.NoError(t, err)
	return &countingStore{Store: mem}
}

func newService(t *testing.T, opts ...calc.Option) *calc.Service {
	t.Helper()
	cfg := calc.DefaultConfig()
	cfg.MaxInputBytes = 64
	cfg.MaxBatchSize = 10
	cfg.BatchConcurrency = 3
	svc, err := calc.New(cfg, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := calc.New(calc.Config{MaxInputBytes: 1, MaxBatchSize: 0, BatchConcurrency: 1})
	assert.ErrorIs(t, err, calc.ErrInvalidConfig)

	_, err = calc.New(calc.DefaultConfig())
	assert.NoError(t, err)
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("accepted input", func(t *testing.T) {
		t.Parallel()
		res, err := newService(t).Add(ctx, calc.Request{Numbers: "1,2\n3"})
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, calc.Result{Input: "1,2\n3", Sum: 6}, res)
		assert.NoError(t, res.Err())
	})

	t.Run("caller delimiters", func(t *testing.T) {
		t.Parallel()
		res, err := newService(t).Add(ctx, calc.Request{Numbers: "4|5", Delimiters: []string{"|"}})
		require.NoError(t, err)
		assert.Equal(t, 9, res.Sum)
	})

	t.Run("rejected inputs are results, not errors", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)
		tests := []struct {
			input string
			want  error
		}{
			{input: "1,x,y", want: calculator.InvalidNumbersError{Values: []string{"x", "y"}}},
			{input: "1,", want: calculator.ErrStartingOrEndingByDelimiter},
			{input: "-1,2,-3", want: calculator.NegativeIntegersError{Values: []int{-1, -3}}},
		}
		for _, tt := range tests {
			res, err := svc.Add(ctx, calc.Request{Numbers: tt.input})
			require.NoError(t, err)
			assert.False(t, res.OK())
			assert.Equal(t, tt.want, res.Err(), "input %q", tt.input)
			assert.Equal(t, tt.want.Error(), res.Failure.Message)
		}
	})

	t.Run("invalid requests fail validation", func(t *testing.T) {
		t.Parallel()
		svc := newService(t)

		_, err := svc.Add(ctx, calc.Request{Numbers: strings.Repeat("1", 65)})
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("numbers"))

		_, err = svc.Add(ctx, calc.Request{Numbers: "1", Delimiters: []string{"", "1"}})
		verrs = validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"delimiters", "delimiters[1]"}, verrs.Fields())
	})

	t.Run("results are memoized including rejections", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := newService(t, calc.WithCache(store))

		for range 3 {
			res, err := svc.Add(ctx, calc.Request{Numbers: "1,2"})
			require.NoError(t, err)
			assert.Equal(t, 3, res.Sum)

			res, err = svc.Add(ctx, calc.Request{Numbers: "-7"})
			require.NoError(t, err)
			assert.Equal(t, calculator.NegativeIntegersError{Values: []int{-7}}, res.Err())
		}
		assert.Equal(t, int32(2), store.sets.Load())
		assert.Equal(t, int32(4), store.hits.Load())
	})

	t.Run("delimiters are part of the cache key", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)
		svc := newService(t, calc.WithCache(store))

		res, err := svc.Add(ctx, calc.Request{Numbers: "1;2"})
		require.NoError(t, err)
		assert.False(t, res.OK())

		res, err = svc.Add(ctx, calc.Request{Numbers: "1;2", Delimiters: []string{";"}})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Sum)
		assert.Zero(t, store.hits.Load())
	})

	t.Run("cache failures degrade to recomputation", func(t *testing.T) {
		t.Parallel()
		unavailable := errors.New("cache unavailable")
		store := &mockStore{}
		store.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(calc.Result{}, false, unavailable).Once()
		store.On("Set", mock.Anything, mock.AnythingOfType("string"), calc.Result{Input: "2,2", Sum: 4}).Return(unavailable).Once()
		svc := newService(t, calc.WithCache(store))

		res, err := svc.Add(ctx, calc.Request{Numbers: "2,2"})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Sum)
		store.AssertExpectations(t)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newService(t).Add(cctx, calc.Request{Numbers: "1"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_AddBatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("results keep request order", func(t *testing.T) {
		t.Parallel()
		reqs := make([]calc.Request, 10)
		for i := range reqs {
			reqs[i] = calc.Request{Numbers: strconv.Itoa(i) + ",1"}
		}
		reqs[4] = calc.Request{Numbers: "-4"}

		results, err := newService(t).AddBatch(ctx, reqs)
		require.NoError(t, err)
		require.Len(t, results, len(reqs))
		for i, res := range results {
			assert.Equal(t, reqs[i].Numbers, res.Input)
			if i == 4 {
				assert.Equal(t, calculator.KindNegativeIntegers, res.Failure.Kind)
				continue
			}
			assert.Equal(t, i+1, res.Sum)
		}
	})

	t.Run("oversized batch is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := newService(t).AddBatch(ctx, make([]calc.Request, 11))
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"items"}, verrs.Fields())
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := newService(t).AddBatch(ctx, nil)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("invalid items are reported with their index", func(t *testing.T) {
		t.Parallel()
		_, err := newService(t).AddBatch(ctx, []calc.Request{
			{Numbers: "1"},
			{Numbers: "2", Delimiters: []string{"9"}},
		})
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"items[1].delimiters[0]"}, verrs.Fields())
	})

	t.Run("cancelled context fails the batch", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newService(t).AddBatch(cctx, []calc.Request{{Numbers: "1"}, {Numbers: "2"}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	res := calc.Result{Failure: &calc.Failure{Kind: calculator.KindStartingOrEndingByDelimiter}}
	addErr, ok := calculator.AsAddError(res.Err())
	require.True(t, ok)
	assert.Equal(t, calculator.KindStartingOrEndingByDelimiter, addErr.Kind())
	assert.ErrorIs(t, res.Err(), calculator.ErrDelimiterPosition)
}
