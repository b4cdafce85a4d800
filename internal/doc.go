// Package internal wires the dashboard client together and runs the
// bootstrap server. Import "github.com/dmitrymomot/focus" instead, which
// re-exports the public API.
//
// One [App] is one page life: a single cookie jar shared by the primary and
// resource clients, one session bridge, one auth controller, and the resource
// endpoint modules gated on the bridge.
//
// The primary client resolves its origin from AUTH_API_BASE_URL and never
// carries the CSRF header. The resource client resolves from API_BASE_URL and
// injects the CSRF header on mutating calls.
package internal
