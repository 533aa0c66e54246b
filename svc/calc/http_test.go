package calc_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcalc/handler"
	"github.com/dmitrymomot/strcalc/pkg/requestid"
	"github.com/dmitrymomot/strcalc/svc/calc"
)

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestRouter_Add(t *testing.T) {
	t.Parallel()
	h := calc.Router(newService(t), calc.RouterOptions{})

	t.Run("returns the sum", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add", `{"numbers":"//[***]\n1***2***3"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"input":"//[***]\n1***2***3","sum":6}`, string(env.Data))
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
	})

	t.Run("uses caller delimiters", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add", `{"numbers":"1|2","delimiters":["|"]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"input":"1|2","sum":3}`, string(env.Data))
	})

	t.Run("rejected input is a 422 with details", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			body    string
			code    string
			details map[string][]string
		}{
			{body: `{"numbers":"1,a,"}`, code: "starting_or_ending_by_delimiter"},
			{body: `{"numbers":"1,a,,b"}`, code: "invalid_numbers", details: map[string][]string{"invalid_numbers": {"a", "", "b"}}},
			{body: `{"numbers":"-1,2,-3"}`, code: "negative_integers", details: map[string][]string{"negative_integers": {"-1", "-3"}}},
		}
		for _, tt := range tests {
			w, env := do(t, h, http.MethodPost, "/v1/add", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, tt.body)
			require.NotNil(t, env.Error, tt.body)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.details, env.Error.Details)
			assert.NotEmpty(t, env.Error.Message)
		}
	})

	t.Run("invalid request is a 400", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add", `{"numbers":"1","delimiters":["7"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Contains(t, env.Error.Details, "delimiters[0]")
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add", `{"numbers":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", env.Error.Code)
	})

	t.Run("missing content type is a 415", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/v1/add", strings.NewReader(`{"numbers":"1"}`))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("unknown route and method", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodGet, "/v2/add", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", env.Error.Code)

		w, _ = do(t, h, http.MethodGet, "/v1/add", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestRouter_AddBatch(t *testing.T) {
	t.Parallel()
	h := calc.Router(newService(t), calc.RouterOptions{})

	t.Run("returns per item results", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add/batch", `{"items":[{"numbers":"1,2"},{"numbers":"-5"},{"numbers":"7;8","delimiters":[";"]}]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var results []calc.Result
		require.NoError(t, json.Unmarshal(env.Data, &results))
		require.Len(t, results, 3)
		assert.Equal(t, 3, results[0].Sum)
		assert.Equal(t, []int{-5}, results[1].Failure.NegativeIntegers)
		assert.Equal(t, 15, results[2].Sum)
		assert.Equal(t, map[string]any{"total": float64(3), "rejected": float64(1)}, env.Meta)
	})

	t.Run("empty batch is a 400", func(t *testing.T) {
		t.Parallel()
		w, env := do(t, h, http.MethodPost, "/v1/add/batch", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error.Details, "items")
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	t.Run("live", func(t *testing.T) {
		t.Parallel()
		w, _ := do(t, calc.Router(newService(t), calc.RouterOptions{}), http.MethodGet, "/health/live", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		w, _ := do(t, calc.Router(newService(t), calc.RouterOptions{}), http.MethodGet, "/health/ready", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("not ready when a dependency fails", func(t *testing.T) {
		t.Parallel()
		h := calc.Router(newService(t), calc.RouterOptions{
			Readiness: []func(context.Context) error{
				func(context.Context) error { return errors.New("redis down") },
			},
		})
		w, _ := do(t, h, http.MethodGet, "/health/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_Middlewares(t *testing.T) {
	t.Parallel()

	var seen string
	h := calc.Router(newService(t), calc.RouterOptions{
		Middlewares: []func(http.Handler) http.Handler{
			func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen = requestid.FromContext(r.Context())
					next.ServeHTTP(w, r)
				})
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(requestid.Header, "client-id-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "client-id-1", seen)
}
