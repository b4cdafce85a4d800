package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/cookie"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newClient(t *testing.T, base string, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	jar, err := cookie.NewJar()
	require.NoError(t, err)
	return apiclient.New(append([]apiclient.Option{
		apiclient.WithJar(jar),
		apiclient.WithFallbackBaseURL(base),
	}, opts...)...)
}

func TestRequest_Decode(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(item{ID: "1", Name: "deep work"})
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv.URL)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		v, err := apiclient.Request[item](context.Background(), c, "/json")
		require.NoError(t, err)
		require.NotNil(t, v)
		require.Equal(t, "deep work", v.Name)
	})

	t.Run("204 resolves to nil", func(t *testing.T) {
		t.Parallel()
		v, err := apiclient.Request[item](context.Background(), c, "/empty", apiclient.WithMethod(http.MethodPost))
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("non-json body resolves to nil", func(t *testing.T) {
		t.Parallel()
		v, err := apiclient.Request[item](context.Background(), c, "/text")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("malformed json resolves to nil", func(t *testing.T) {
		t.Parallel()
		v, err := apiclient.Request[item](context.Background(), c, "/broken")
		require.NoError(t, err)
		require.Nil(t, v)
	})
}

func TestRequest_HTTPError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"message":"nope","code":"E1"}`))
			}))
			defer srv.Close()

			_, err := apiclient.Request[item](context.Background(), newClient(t, srv.URL), "/x")
			require.Error(t, err)
			require.Equal(t, status, apiclient.StatusOf(err))
			require.True(t, apiclient.IsStatus(err, status))
			require.Equal(t, status == http.StatusNotFound, apiclient.IsNotFound(err))

			apiErr, ok := apiclient.AsError(err)
			require.True(t, ok)
			require.JSONEq(t, `{"message":"nope","code":"E1"}`, string(apiErr.Details))
			require.Equal(t, "nope", apiclient.Message(err, "fallback"))
		})
	}

	t.Run("non-json error body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := apiclient.Request[item](context.Background(), newClient(t, srv.URL), "/x")
		apiErr, ok := apiclient.AsError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusInternalServerError, apiErr.Status)
		require.Nil(t, apiErr.Details)
		require.Equal(t, "Request failed: 500", apiErr.Error())
		require.Equal(t, "fallback", apiclient.Message(err, "fallback"))
	})
}

func TestRequest_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := apiclient.Request[item](context.Background(), newClient(t, base), "/x")
	require.ErrorIs(t, err, apiclient.ErrNetwork)
	require.Equal(t, 0, apiclient.StatusOf(err))
}

func TestRequest_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newClient(t, srv.URL, apiclient.WithTimeout(50*time.Millisecond))
	_, err := apiclient.Request[item](context.Background(), c, "/slow")
	require.ErrorIs(t, err, apiclient.ErrNetwork)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequest_BaseURLResolution(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + r.URL.Path + `"}`))
	}))
	defer srv.Close()

	dead := "http://127.0.0.1:1"

	t.Run("override wins", func(t *testing.T) {
		c := newClient(t, dead, apiclient.WithRuntimeBaseURL(func() string { return dead }))
		v, err := apiclient.Request[item](context.Background(), c, "a", apiclient.WithBaseURL(srv.URL+"/"))
		require.NoError(t, err)
		require.Equal(t, "/a", v.ID)
	})

	t.Run("runtime before fallback", func(t *testing.T) {
		c := newClient(t, dead, apiclient.WithRuntimeBaseURL(func() string { return srv.URL }))
		require.Equal(t, srv.URL, c.BaseURL())
		require.Equal(t, srv.URL+"/b", c.URL("/b"))
	})

	t.Run("empty runtime falls back", func(t *testing.T) {
		c := newClient(t, srv.URL, apiclient.WithRuntimeBaseURL(func() string { return "" }))
		require.Equal(t, srv.URL, c.BaseURL())
	})

	t.Run("no base url", func(t *testing.T) {
		c := newClient(t, "")
		_, err := apiclient.Request[item](context.Background(), c, "/a")
		require.ErrorIs(t, err, apiclient.ErrNoBaseURL)

		v, err := apiclient.Request[item](context.Background(), c, srv.URL+"/abs")
		require.NoError(t, err)
		require.Equal(t, "/abs", v.ID)
	})
}

func TestRequest_Headers(t *testing.T) {
	t.Parallel()

	var last atomic.Pointer[http.Request]
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.Store(r)
		if r.URL.Path == "/auth/session" {
			http.SetCookie(w, &http.Cookie{Name: apiclient.DefaultCSRF.CookieName, Value: "csrf-42", Path: "/"})
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("csrf on mutating verbs only", func(t *testing.T) {
		c := newClient(t, srv.URL, apiclient.WithCSRF(apiclient.DefaultCSRF))

		// No cookie yet: not an error, no header.
		_, err := c.Do(ctx, "/categories/create", apiclient.WithMethod(http.MethodPost))
		require.NoError(t, err)
		require.Empty(t, last.Load().Header.Get("X-CSRF-Token"))

		_, err = c.Do(ctx, "/auth/session", apiclient.WithMethod(http.MethodPost))
		require.NoError(t, err)

		for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			_, err := c.Do(ctx, "/categories/x", apiclient.WithMethod(m))
			require.NoError(t, err)
			require.Equal(t, "csrf-42", last.Load().Header.Get("X-CSRF-Token"), m)
		}

		_, err = c.Do(ctx, "/categories/list")
		require.NoError(t, err)
		require.Empty(t, last.Load().Header.Get("X-CSRF-Token"))
	})

	t.Run("no csrf binding never sends header", func(t *testing.T) {
		jar, err := cookie.NewJar()
		require.NoError(t, err)
		bound := apiclient.New(apiclient.WithJar(jar), apiclient.WithFallbackBaseURL(srv.URL), apiclient.WithCSRF(apiclient.DefaultCSRF))
		unbound := apiclient.New(apiclient.WithJar(jar), apiclient.WithFallbackBaseURL(srv.URL))

		_, err = bound.Do(ctx, "/auth/session", apiclient.WithMethod(http.MethodPost))
		require.NoError(t, err)

		_, err = unbound.Do(ctx, "/auth/logout", apiclient.WithMethod(http.MethodPost))
		require.NoError(t, err)
		require.Empty(t, last.Load().Header.Get("X-CSRF-Token"))
	})

	t.Run("caching disabled and request id", func(t *testing.T) {
		c := newClient(t, srv.URL)
		_, err := c.Do(apiclient.WithRequestID(ctx, "req-1"), "/x")
		require.NoError(t, err)
		r := last.Load()
		require.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		require.Equal(t, "no-cache", r.Header.Get("Pragma"))
		require.Equal(t, "req-1", r.Header.Get(apiclient.RequestIDHeader))

		_, err = c.Do(ctx, "/x")
		require.NoError(t, err)
		require.NotEmpty(t, last.Load().Header.Get(apiclient.RequestIDHeader))
	})

	t.Run("json body and header override", func(t *testing.T) {
		var (
			got         map[string]string
			contentType string
			extra       string
		)
		echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			extra = r.Header.Get("X-Extra")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer echo.Close()

		c := newClient(t, echo.URL)
		_, err := c.Do(ctx, "/categories/create",
			apiclient.WithMethod(http.MethodPost),
			apiclient.WithBody(map[string]string{"name": "Reading"}),
			apiclient.WithHeader("X-Extra", "yes"),
		)
		require.NoError(t, err)
		require.Equal(t, "application/json", contentType)
		require.Equal(t, "yes", extra)
		require.Equal(t, "Reading", got["name"])
	})
}

func TestRequest_EncodeError(t *testing.T) {
	t.Parallel()

	c := newClient(t, "http://127.0.0.1:1")
	_, err := c.Do(context.Background(), "/x", apiclient.WithMethod(http.MethodPost), apiclient.WithBody(make(chan int)))
	require.ErrorIs(t, err, apiclient.ErrEncode)
}

func TestMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fallback", apiclient.Message(errors.New("plain"), "fallback"))
	require.Equal(t, "fallback", apiclient.Message(nil, "fallback"))
}
