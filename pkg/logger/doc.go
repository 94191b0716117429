// Package logger provides log/slog attribute helpers shared by the SDK
// packages. Helpers return an empty slog.Attr for zero inputs, so call sites
// never need nil checks:
//
//	log.Info("request completed",
//		logger.Method("GET"),
//		logger.Path("/events/"),
//		logger.StatusCode(200),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
