package calc

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/strcalc/handler"
	"github.com/dmitrymomot/strcalc/pkg/binder"
	"github.com/dmitrymomot/strcalc/pkg/httpserver"
	"github.com/dmitrymomot/strcalc/pkg/logger"
	"github.com/dmitrymomot/strcalc/pkg/requestid"
)

// RouterOptions configures the HTTP surface.
type RouterOptions struct {
	Logger *slog.Logger
	// Readiness checks run by GET /health/ready, e.g. a Redis ping.
	Readiness []func(context.Context) error
	// Middlewares run after request id assignment, outermost first.
	Middlewares []func(http.Handler) http.Handler
}

// Router mounts the calculator API and health probes:
//
//	POST /v1/add         {numbers, delimiters?}
//	POST /v1/add/batch   {items: [{numbers, delimiters?}, ...]}
//	GET  /health/live
//	GET  /health/ready
func Router(svc *Service, opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	errorHandler := handler.NewErrorHandler(log)
	// Request bodies may carry escaping overhead on top of the raw input.
	bind := binder.JSON(binder.WithMaxSize(int64(svc.cfg.MaxInputBytes)*int64(svc.cfg.MaxBatchSize)*2 + 1024))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer, requestid.Middleware)
	r.Use(opts.Middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	r.Post("/v1/add", handler.Wrap(addHandler(svc),
		handler.WithBinders[handler.Context, Request](bind),
		handler.WithErrorHandler[handler.Context, Request](errorHandler),
	))
	r.Post("/v1/add/batch", handler.Wrap(addBatchHandler(svc),
		handler.WithBinders[handler.Context, BatchRequest](bind),
		handler.WithErrorHandler[handler.Context, BatchRequest](errorHandler),
	))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, append([]func(context.Context) error{svc.Ready}, opts.Readiness...)...))

	return r
}

// Ready reports whether the service can evaluate requests.
func (s *Service) Ready(ctx context.Context) error {
	return ctx.Err()
}

type addResponse struct {
	Input string `json:"input"`
	Sum   int    `json:"sum"`
}

func addHandler(svc *Service) handler.HandlerFunc[handler.Context, Request] {
	return func(ctx handler.Context, req Request) handler.Response {
		res, err := svc.Add(ctx, req)
		if err != nil {
			return handler.JSONError(err)
		}
		if !res.OK() {
			return failureResponse(res.Failure)
		}
		return handler.JSON(addResponse{Input: res.Input, Sum: res.Sum})
	}
}

func addBatchHandler(svc *Service) handler.HandlerFunc[handler.Context, BatchRequest] {
	return func(ctx handler.Context, req BatchRequest) handler.Response {
		results, err := svc.AddBatch(ctx, req.Items)
		if err != nil {
			return handler.JSONError(err)
		}
		rejected := 0
		for _, res := range results {
			if !res.OK() {
				rejected++
			}
		}
		return handler.JSON(results, handler.WithJSONMeta(map[string]any{
			"total":    len(results),
			"rejected": rejected,
		}))
	}
}

// failureResponse renders a rejected input as 422 with the offending values
// under details.
func failureResponse(f *Failure) handler.Response {
	detail := &handler.ErrorDetail{
		Code:    string(f.Kind),
		Message: f.Message,
	}
	switch {
	case len(f.InvalidNumbers) > 0:
		detail.Details = map[string][]string{"invalid_numbers": f.InvalidNumbers}
	case len(f.NegativeIntegers) > 0:
		values := make([]string, len(f.NegativeIntegers))
		for i, n := range f.NegativeIntegers {
			values[i] = strconv.Itoa(n)
		}
		detail.Details = map[string][]string{"negative_integers": values}
	}
	return handler.JSONError(detail, handler.WithJSONStatus(http.StatusUnprocessableEntity))
}
