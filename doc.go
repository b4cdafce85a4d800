// Package focus is the client side of the focus-tracking dashboard: it
// resolves backend origins at runtime, signs users in against the identity
// service, bridges that sign-in into a cookie session on the resource service,
// and calls the category and session endpoints with CSRF protection.
//
// # Quick Start
//
//	app, err := focus.New(
//	    focus.WithRuntimeSource(runtimeconfig.FromEnv()),
//	    focus.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Restore a previous sign-in, if the identity cookie is still valid.
//	user, err := app.Auth().Authenticate(ctx)
//
//	// Or sign in explicitly.
//	user, err = app.Auth().Login(ctx, email, password)
//	if errors.Is(err, focus.ErrInvalidCredentials) {
//	    fmt.Println(err) // server message or "Login failed"
//	}
//
//	cats, err := app.Categories().List(ctx)
//	running, err := app.Sessions().Running(ctx)
//
// # Two sessions
//
// The identity service and the resource service keep independent sessions.
// After a successful sign-in the bridge POSTs the bearer credential to the
// resource service's /auth/session, which answers with a session cookie and a
// CSRF cookie. Both land in the App's cookie jar. Resource calls fail fast with
// [ErrNotBridged] until the bridge has succeeded, and again after Logout.
//
// Concurrent bridge attempts share one request.
//
// # Runtime configuration
//
// Origins come from a [runtimeconfig.Source] read once per App: the bootstrap
// script served at /runtime-config.js, a YAML file, or the environment.
// Absent values fall back to build-time defaults set with -ldflags:
//
//	go build -ldflags "-X github.com/dmitrymomot/focus/pkg/runtimeconfig.defaultAPIBaseURL=https://api.example.com"
//
// # Errors
//
// Every failed call returns an [*APIError] carrying the HTTP status, or
// status 0 with [ErrNetwork] for transport failures. Use [IsNotFound],
// [StatusOf] and [Message] to inspect it.
package focus
