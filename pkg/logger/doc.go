// Package logger builds the structured loggers used across the client.
//
// Loggers write JSON through log/slog. Every record passes through a handler
// that appends context-extracted attributes (request IDs, component names)
// and masks attributes that could carry credentials: bearer tokens,
// passwords and Authorization headers never reach the output.
//
// # Usage
//
//	log := logger.New(
//		logger.WithComponent("bridge"),
//		logger.WithExtractors(apiclient.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "session bridged")
//
// # Redaction
//
// Attribute keys matching [SensitiveKeys] (case-insensitive, also inside
// groups) are replaced with [Redacted]:
//
//	log.Info("exchange", "token", tok) // {"token":"[REDACTED]"}
//
// # Sentry
//
// [NewWithSentry] additionally forwards warnings and errors to Sentry. With an
// empty DSN it falls back to stdout, so the same code path serves local runs.
package logger
