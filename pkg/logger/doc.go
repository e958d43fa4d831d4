// Package logger builds *slog.Logger instances for guard-composed programs and
// provides attribute helpers that keep key names consistent across packages.
//
// New applies a list of Option values on top of production-safe defaults
// (JSON output, info level, stdout). WithEnvironment switches between the
// development preset (text, debug) and the staging/production preset (JSON,
// info). ContextExtractor callbacks registered with WithContextExtractors run
// on every record and may add attributes taken from the context, such as the
// environment or the CLI command being executed.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "guardcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "guard violation",
//	    logger.Component("guard"),
//	    logger.GuardPosition("argument", 0),
//	    logger.Error(err),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so call sites do not need nil checks.
package logger
