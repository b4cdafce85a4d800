// Package health serves liveness and readiness probes for the dashboard
// bootstrap server and builds the checks it runs.
//
// Readiness is a set of named [CheckFunc] values run in parallel under one
// deadline. [Reachable] probes a backend origin: any HTTP answer counts as
// reachable, only transport failures do not. An origin that was never
// configured fails with [ErrNotConfigured].
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"api":  health.Reachable(hc, cfg.APIBaseURL),
//		"auth": health.Reachable(hc, cfg.AuthAPIBaseURL),
//	}, health.WithLogger(log)))
//
// Handlers answer plain text by default. Send Accept: application/json or
// ?format=json for the per-check report:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "api":  {"status": "healthy"},
//	    "auth": {"status": "unhealthy", "error": "health: backend unreachable"}
//	  }
//	}
package health
