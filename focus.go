package focus

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/focus/internal"
	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/auth"
	"github.com/dmitrymomot/focus/pkg/bridge"
	resources "github.com/dmitrymomot/focus/pkg/focus"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

// Type aliases - public API
type (
	// App holds one page life: cookie jar, clients, bridge and controller.
	App = internal.App

	// Option configures the App.
	Option = internal.Option

	// RunOption configures the bootstrap server.
	RunOption = internal.RunOption

	// RuntimeConfig holds the runtime-resolved service origins.
	RuntimeConfig = runtimeconfig.Config

	// Identity is the signed-in user as reported by the identity service.
	Identity = auth.Identity

	// AuthState is the controller's sign-in state.
	AuthState = auth.State

	// AuthError is a sign-in or registration failure with a user-facing message.
	AuthError = auth.Error

	// APIError is a failed request to either service.
	APIError = apiclient.Error

	// CSRF pairs the resource CSRF cookie with its request header.
	CSRF = apiclient.CSRF

	// Category groups focus sessions.
	Category = resources.Category

	// Session is a focus session.
	Session = resources.Session

	// CreateCategoryInput is the body of a category create call.
	CreateCategoryInput = resources.CreateCategoryInput

	// ColorPreset is a named category color.
	ColorPreset = resources.ColorPreset
)

// Sign-in states.
const (
	SignedOut      = auth.SignedOut
	Authenticating = auth.Authenticating
	SignedIn       = auth.SignedIn
)

// Errors
var (
	ErrNetwork            = apiclient.ErrNetwork
	ErrNotBridged         = bridge.ErrNotBridged
	ErrNoCredential       = bridge.ErrNoCredential
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrRegistrationFailed = auth.ErrRegistrationFailed
	ErrProfileUnavailable = auth.ErrProfileUnavailable
)

// New wires a dashboard client.
//
// Example:
//
//	app, err := focus.New(
//	    focus.WithRuntimeSource(runtimeconfig.FromFile("runtime.yaml")),
//	    focus.WithTimeout(5*time.Second),
//	)
func New(opts ...Option) (*App, error) {
	return internal.New(opts...)
}

// App options

// WithRuntimeSource sets where runtime config is read from.
func WithRuntimeSource(src runtimeconfig.Source) Option {
	return internal.WithRuntimeSource(src)
}

// WithDefaults replaces the build-time fallback origins.
func WithDefaults(d runtimeconfig.Defaults) Option {
	return internal.WithDefaults(d)
}

// WithLogger sets the logger shared by every component.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithHTTPClient sets the transport template for both service clients.
func WithHTTPClient(hc *http.Client) Option {
	return internal.WithHTTPClient(hc)
}

// WithTimeout sets the per-request deadline. Defaults to 10s.
func WithTimeout(d time.Duration) Option {
	return internal.WithTimeout(d)
}

// WithCSRF sets the resource CSRF cookie and header names.
func WithCSRF(csrf CSRF) Option {
	return internal.WithCSRF(csrf)
}

// WithCredentialCookie sets the identity cookie used to bridge a restored session.
func WithCredentialCookie(name string) Option {
	return internal.WithCredentialCookie(name)
}

// Run options

// Address sets the bootstrap server listen address. Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// ShutdownTimeout bounds graceful shutdown. Defaults to 30s.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook runs after the server stops accepting requests.
func ShutdownHook(fn func(ctx context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// Error helpers

// IsNotFound reports whether err is a 404 from either service.
func IsNotFound(err error) bool { return apiclient.IsNotFound(err) }

// StatusOf returns the HTTP status of err, or 0.
func StatusOf(err error) int { return apiclient.StatusOf(err) }

// Message returns the server-supplied message of err, or fallback.
func Message(err error, fallback string) string { return apiclient.Message(err, fallback) }

// ColorPresets returns the category color presets.
func ColorPresets() []ColorPreset {
	return append([]ColorPreset(nil), resources.ColorPresets...)
}
