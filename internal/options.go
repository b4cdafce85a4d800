package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

// Option configures the App.
type Option func(*config)

type config struct {
	source           runtimeconfig.Source
	logger           *slog.Logger
	httpClient       *http.Client
	csrf             apiclient.CSRF
	credentialCookie string
	defaults         runtimeconfig.Defaults
	timeout          time.Duration
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		defaults: runtimeconfig.BuildDefaults(),
		csrf:     apiclient.DefaultCSRF,
		timeout:  apiclient.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRuntimeSource sets where runtime config comes from. Without it every
// origin falls back to the build defaults.
func WithRuntimeSource(src runtimeconfig.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithDefaults replaces the build-time fallbacks.
func WithDefaults(d runtimeconfig.Defaults) Option {
	return func(c *config) {
		c.defaults = d
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient sets the transport template for both clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request deadline for both clients.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithCSRF sets the resource service CSRF cookie/header pair.
func WithCSRF(csrf apiclient.CSRF) Option {
	return func(c *config) {
		c.csrf = csrf
	}
}

// WithCredentialCookie sets the primary cookie used as bridge credential on
// session restore.
func WithCredentialCookie(name string) Option {
	return func(c *config) {
		c.credentialCookie = name
	}
}
