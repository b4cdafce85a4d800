package apiclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/focus/pkg/cookie"
)

// DefaultTimeout bounds every request unless overridden with WithTimeout.
const DefaultTimeout = 10 * time.Second

// CSRF pairs the cookie the resource service sets with the header it expects.
// The two names are one contract; change them together.
type CSRF struct {
	CookieName string
	HeaderName string
}

// DefaultCSRF is the contract used by the resource service.
var DefaultCSRF = CSRF{
	CookieName: "focus_csrf",
	HeaderName: "X-CSRF-Token",
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. The client is copied; when a
// jar is configured it replaces the copy's Jar.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithJar sets the shared cookie jar used for credential forwarding and CSRF lookup.
func WithJar(jar *cookie.Jar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithRuntimeBaseURL sets the function returning the runtime-configured base URL.
// It is called on every request; an empty result falls through to the static fallback.
func WithRuntimeBaseURL(fn func() string) Option {
	return func(c *Client) {
		c.runtimeBase = fn
	}
}

// WithFallbackBaseURL sets the static build-time base URL.
func WithFallbackBaseURL(base string) Option {
	return func(c *Client) {
		c.fallbackBase = base
	}
}

// WithCSRF enables CSRF header injection on mutating requests.
func WithCSRF(csrf CSRF) Option {
	return func(c *Client) {
		if csrf.CookieName != "" && csrf.HeaderName != "" {
			c.csrf = &csrf
		}
	}
}

// WithTimeout sets the per-request deadline. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	body    any
	headers http.Header
	method  string
	baseURL string
}

// WithMethod sets the HTTP method. Defaults to GET.
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		o.method = method
	}
}

// WithBody sets a request body. Values are JSON-encoded unless they are
// already []byte or json.RawMessage.
func WithBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithHeader adds a request header. Headers set this way override the
// client's defaults, including the CSRF header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Set(key, value)
	}
}

// WithBaseURL overrides the base URL for this request.
func WithBaseURL(base string) RequestOption {
	return func(o *requestOptions) {
		o.baseURL = base
	}
}
