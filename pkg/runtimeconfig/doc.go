// Package runtimeconfig resolves which backend origins the client talks to.
//
// Configuration is supplied once per process by a bootstrap payload, the
// `window.__RUNTIME_CONFIG__ = {...};` script served next to the dashboard,
// and is read-only afterwards. Absent fields are not errors: callers fall back
// to build-time [Defaults].
//
// # Usage
//
//	loader := runtimeconfig.NewLoader(runtimeconfig.FromEnv())
//	cfg := loader.Get().Resolve(runtimeconfig.BuildDefaults())
//
// A Loader without a source returns an empty Config, which mirrors evaluating
// the configuration outside a browser.
//
// # Bootstrap Script
//
// [Script] renders the payload and [Handler] serves it with caching disabled:
//
//	r.Get("/runtime-config.js", runtimeconfig.Handler(cfg).ServeHTTP)
//
// [FromScript] and [FromURL] parse the same payload back.
package runtimeconfig
