// Package logging provides structured logging utilities with context propagation.
//
// It wraps log/slog: JSON output in production, text output for local
// development, request id propagation and a logger carried in the context.
//
// Example usage:
//
//	logger := logging.NewLogger("info", "json")
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
