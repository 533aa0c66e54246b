// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a bound request value and returns a Response; Wrap
// adapts it to http.HandlerFunc, running the configured binders first and
// routing binding or rendering failures to an ErrorHandler:
//
//	type AddRequest struct {
//		Numbers    string   `json:"numbers"`
//		Delimiters []string `json:"delimiters,omitempty"`
//	}
//
//	func add(ctx handler.Context, req AddRequest) handler.Response {
//		res, err := svc.Add(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(res)
//	}
//
//	r.Post("/v1/add", handler.Wrap(add,
//		handler.WithBinders[handler.Context, AddRequest](binder.JSON()),
//	))
//
// # Responses
//
// Every JSON body uses the same envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// JSONError classifies errors: validator.ValidationErrors become 400 with
// per-field details, HTTPError values keep their own status, binder errors map
// to 400, 413 or 415, and anything else is reported as a generic 500.
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns such as timing or
// logging. The first decorator passed to WithDecorators is the outermost.
package handler
