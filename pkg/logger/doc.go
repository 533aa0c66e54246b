// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on every record. This is how request ids and the runtime
// environment end up on each line without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "strcalc"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "input rejected",
//	    logger.Input(input),
//	    logger.ErrorKind("negative_integers"),
//	)
//
// Error, RequestID and ErrorKind return an empty attribute for zero values,
// so callers can pass them unconditionally.
package logger
