// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts and health-check handlers.
//
// Run (or Serve, for an existing listener) blocks until the context is
// cancelled, an interrupt or TERM signal arrives, or Shutdown is called, then
// drains in-flight requests within the shutdown timeout. Construction goes
// through New or NewFromConfig with functional options:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Errors wrap ErrStart or ErrShutdown so they can be inspected with errors.Is.
//
// HealthCheckHandler serves liveness ("ALIVE") when given no checks and
// readiness ("READY"/"NOT_READY") otherwise.
package httpserver
