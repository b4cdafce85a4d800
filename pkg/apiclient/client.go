package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/focus/pkg/cookie"
	"github.com/dmitrymomot/focus/pkg/logger"
)

const maxBodySize = 4 << 20

// Client issues requests against one service.
type Client struct {
	http         *http.Client
	jar          *cookie.Jar
	runtimeBase  func() string
	csrf         *CSRF
	logger       *slog.Logger
	fallbackBase string
	timeout      time.Duration
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		timeout: DefaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.jar != nil {
		c.http.Jar = c.jar
	}
	return c
}

// Response is a successful (2xx) response with its body fully read.
type Response struct {
	Header http.Header
	Body   []byte
	Status int
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	return isJSON(r.Header)
}

// BaseURL returns the base URL a request would use without an override.
func (c *Client) BaseURL() string {
	return c.resolveBase("")
}

// URL returns the absolute URL for path, as a request would build it.
func (c *Client) URL(path string) string {
	return joinURL(c.resolveBase(""), path)
}

// Jar returns the client's cookie jar, or nil.
func (c *Client) Jar() *cookie.Jar {
	return c.jar
}

// Do performs the request and returns the raw successful response.
// Non-2xx responses and transport failures are returned as *Error.
func (c *Client) Do(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	o := requestOptions{method: http.MethodGet}
	for _, opt := range opts {
		opt(&o)
	}
	method := strings.ToUpper(o.method)
	target := joinURL(c.resolveBase(o.baseURL), path)

	body, err := encodeBody(o.body)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request %s %s: %w", method, target, err)
	}
	if req.URL.Host == "" {
		return nil, errors.Join(ErrNoBaseURL, fmt.Errorf("relative url %q", target))
	}

	reqID := RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = newRequestID()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.csrf != nil && c.jar != nil && isMutating(method) {
		if token, err := c.jar.Value(target, c.csrf.CookieName); err == nil {
			req.Header.Set(c.csrf.HeaderName, token)
		}
	}
	for k, vv := range o.headers {
		req.Header[k] = vv
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("url", target),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		slog.String("method", method),
		slog.String("url", target),
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var details json.RawMessage
		if readErr == nil && isJSON(resp.Header) && json.Valid(data) {
			details = data
		}
		return nil, newHTTPError(resp.StatusCode, details)
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Response{Status: resp.StatusCode, Header: resp.Header}, nil
	}
	if readErr != nil {
		// A truncated 2xx body is treated like a malformed one.
		data = nil
	}

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Request performs the request and decodes a JSON response into T.
// It returns a nil value for 204 responses and for 2xx responses whose body is
// not JSON or does not decode.
func Request[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*T, error) {
	resp, err := c.Do(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	return decode[T](resp), nil
}

func decode[T any](resp *Response) *T {
	if resp.Status == http.StatusNoContent || len(resp.Body) == 0 || !resp.IsJSON() {
		return nil
	}
	var v T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil
	}
	return &v
}

func (c *Client) resolveBase(override string) string {
	if override != "" {
		return override
	}
	if c.runtimeBase != nil {
		if v := c.runtimeBase(); v != "" {
			return v
		}
	}
	return c.fallbackBase
}

func joinURL(base, path string) string {
	if base == "" {
		return path
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func encodeBody(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Join(ErrEncode, err)
		}
		return data, nil
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func isJSON(h http.Header) bool {
	ct := h.Get("Content-Type")
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.Contains(ct, "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
