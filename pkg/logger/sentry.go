package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"APP_VERSION"`
	// MinLevel is slog.LevelWarn or slog.LevelError.
	MinLevel slog.Level
}

// NewWithSentry creates a logger writing JSON to the configured output and
// forwarding warnings and errors to Sentry. Without a DSN, or if Sentry fails
// to initialize, it behaves like New.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := newOptions(opts...)
	stdout := slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})

	if cfg.DSN == "" {
		return o.build(stdout)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		log := o.build(stdout)
		log.Error("failed to initialize sentry", slog.String("error", err.Error()))
		return log
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return o.build(fanoutHandler{stdout, sentryHandler})
}
