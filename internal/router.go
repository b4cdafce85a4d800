package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/focus/middlewares"
	"github.com/dmitrymomot/focus/pkg/health"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

// Bootstrap server routes.
const (
	RuntimeConfigPath = "/runtime-config.js"
	LivenessPath      = "/health/live"
	ReadinessPath     = "/health/ready"
)

// Handler returns the bootstrap server routes. The runtime script is rendered
// once from the resolved Config.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(a.logger))

	script := runtimeconfig.Handler(a.Config())
	r.Get(RuntimeConfigPath, script.ServeHTTP)
	r.Head(RuntimeConfigPath, script.ServeHTTP)

	r.Get(LivenessPath, health.LivenessHandler())
	r.Get(ReadinessPath, health.ReadinessHandler(a.Checks(), health.WithLogger(a.logger)))
	return r
}
