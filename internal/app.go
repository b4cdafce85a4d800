package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/auth"
	"github.com/dmitrymomot/focus/pkg/bridge"
	"github.com/dmitrymomot/focus/pkg/cookie"
	"github.com/dmitrymomot/focus/pkg/focus"
	"github.com/dmitrymomot/focus/pkg/health"
	"github.com/dmitrymomot/focus/pkg/logger"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

// App holds one page life of the dashboard client.
type App struct {
	logger     *slog.Logger
	loader     *runtimeconfig.Loader
	jar        *cookie.Jar
	primary    *apiclient.Client
	resource   *apiclient.Client
	bridge     *bridge.Bridge
	auth       *auth.Controller
	categories *focus.Categories
	sessions   *focus.Sessions
	probe      *http.Client
	defaults   runtimeconfig.Defaults
	noticeOnce sync.Once
}

// New wires the App. Runtime config is not read until the first request or
// Config call.
func New(opts ...Option) (*App, error) {
	cfg := newConfig(opts...)

	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}

	jar, err := cookie.NewJar()
	if err != nil {
		return nil, errors.Join(ErrJar, err)
	}

	a := &App{
		logger:   log,
		loader:   runtimeconfig.NewLoader(cfg.source),
		jar:      jar,
		defaults: cfg.defaults,
		probe:    cfg.httpClient,
	}

	common := []apiclient.Option{
		apiclient.WithHTTPClient(cfg.httpClient),
		apiclient.WithJar(jar),
		apiclient.WithTimeout(cfg.timeout),
	}

	a.primary = apiclient.New(append(common,
		apiclient.WithRuntimeBaseURL(func() string { return a.loader.Get().AuthAPIBaseURL }),
		apiclient.WithFallbackBaseURL(cfg.defaults.AuthAPIBaseURL),
		apiclient.WithLogger(log.With(slog.String("client", "primary"))),
	)...)

	a.resource = apiclient.New(append(common,
		apiclient.WithRuntimeBaseURL(func() string { return a.loader.Get().APIBaseURL }),
		apiclient.WithFallbackBaseURL(cfg.defaults.APIBaseURL),
		apiclient.WithCSRF(cfg.csrf),
		apiclient.WithLogger(log.With(slog.String("client", "resource"))),
	)...)

	a.bridge = bridge.New(a.resource, bridge.WithLogger(log))
	a.auth = auth.NewController(a.primary, a.resource, a.bridge,
		auth.WithLogger(log),
		auth.WithCredentialCookie(cfg.credentialCookie),
	)
	a.categories = focus.NewCategories(a.resource, a.bridge)
	a.sessions = focus.NewSessions(a.resource, a.bridge)

	return a, nil
}

// Config returns the runtime config with absent fields filled from the defaults.
func (a *App) Config() runtimeconfig.Config {
	cfg := a.loader.Get()
	a.noticeOnce.Do(func() {
		switch err := a.loader.Err(); {
		case err != nil:
			a.logger.Warn("runtime config unavailable, using defaults", slog.String("error", err.Error()))
		case cfg.IsZero():
			a.logger.Info("runtime config empty, using defaults")
		}
	})
	return cfg.Resolve(a.defaults)
}

// Auth returns the sign-in controller.
func (a *App) Auth() *auth.Controller { return a.auth }

// Bridge returns the resource session bridge.
func (a *App) Bridge() *bridge.Bridge { return a.bridge }

// Categories returns the category endpoints.
func (a *App) Categories() *focus.Categories { return a.categories }

// Sessions returns the focus session endpoints.
func (a *App) Sessions() *focus.Sessions { return a.sessions }

// Primary returns the identity service client.
func (a *App) Primary() *apiclient.Client { return a.primary }

// Resource returns the resource service client.
func (a *App) Resource() *apiclient.Client { return a.resource }

// Jar returns the cookie jar shared by both clients.
func (a *App) Jar() *cookie.Jar { return a.jar }

// Logger returns the App logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Checks returns readiness checks for both backends.
func (a *App) Checks() health.Checks {
	return health.Checks{
		"api": func(ctx context.Context) error {
			return health.Reachable(a.probe, a.resource.BaseURL())(ctx)
		},
		"auth_api": func(ctx context.Context) error {
			return health.Reachable(a.probe, a.primary.BaseURL())(ctx)
		},
	}
}
