// Command dashboard serves the dashboard bootstrap script and health probes.
//
// Runtime origins come from RUNTIME_CONFIG_FILE (YAML) layered under the
// environment (API_BASE_URL, AUTH_API_BASE_URL, APP_VERSION). A .env file in
// the working directory is loaded first when present.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/focus"
	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/logger"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         os.Getenv("SENTRY_DSN"),
		Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
		Release:     os.Getenv(runtimeconfig.KeyAppVersion),
		MinLevel:    slog.LevelError,
	},
		logger.WithLevel(parseLevel(os.Getenv("LOG_LEVEL"))),
		logger.WithComponent("dashboard"),
		logger.WithExtractors(apiclient.RequestIDExtractor()),
	)

	app, err := focus.New(
		focus.WithRuntimeSource(runtimeSource()),
		focus.WithLogger(log),
		focus.WithTimeout(getDuration("UPSTREAM_TIMEOUT", apiclient.DefaultTimeout)),
	)
	if err != nil {
		log.Error("failed to initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg := app.Config()
	log.Info("runtime config resolved",
		slog.String("api_base_url", cfg.APIBaseURL),
		slog.String("auth_api_base_url", cfg.AuthAPIBaseURL),
		slog.String("app_version", cfg.AppVersion),
	)

	if err := app.Run(
		focus.Address(getEnv("ADDRESS", ":8080")),
		focus.ShutdownTimeout(getDuration("SHUTDOWN_TIMEOUT", 30*time.Second)),
		focus.ShutdownHook(flushSentry),
	); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runtimeSource() runtimeconfig.Source {
	if path := os.Getenv("RUNTIME_CONFIG_FILE"); path != "" {
		return runtimeconfig.Merge(runtimeconfig.FromFile(path), runtimeconfig.FromEnv())
	}
	return runtimeconfig.FromEnv()
}

func flushSentry(ctx context.Context) error {
	timeout := 2 * time.Second
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	sentry.Flush(timeout)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
