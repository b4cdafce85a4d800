package internal_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/focus/internal"
	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/auth"
	"github.com/dmitrymomot/focus/pkg/bridge"
	"github.com/dmitrymomot/focus/pkg/runtimeconfig"
)

type services struct {
	primary  *httptest.Server
	resource *httptest.Server

	mu          sync.Mutex
	primaryCSRF []string
}

func newServices(t *testing.T) *services {
	t.Helper()
	s := &services{}

	pm := http.NewServeMux()
	pm.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "t1",
			"user":  map[string]string{"id": "u1", "email": "a@b.c"},
		})
	})
	pm.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.primary = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.primaryCSRF = append(s.primaryCSRF, r.Header.Get(apiclient.DefaultCSRF.HeaderName))
		s.mu.Unlock()
		pm.ServeHTTP(w, r)
	}))
	t.Cleanup(s.primary.Close)

	rm := http.NewServeMux()
	rm.HandleFunc("POST /auth/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "focus_sid", Value: "sid", Path: "/", HttpOnly: true})
		http.SetCookie(w, &http.Cookie{Name: apiclient.DefaultCSRF.CookieName, Value: "csrf-1", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	rm.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rm.HandleFunc("GET /categories/list", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("focus_sid"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"categoryId": "c1", "name": "Work", "color": "#ef4444"}})
	})
	s.resource = httptest.NewServer(rm)
	t.Cleanup(s.resource.Close)

	return s
}

func (s *services) csrfOnPrimary() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.primaryCSRF...)
}

func (s *services) app(t *testing.T) *internal.App {
	t.Helper()
	app, err := internal.New(internal.WithRuntimeSource(runtimeconfig.Static(runtimeconfig.Config{
		APIBaseURL:     s.resource.URL,
		AuthAPIBaseURL: s.primary.URL,
		AppVersion:     "1.2.3",
	})))
	require.NoError(t, err)
	return app
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestApp_SignInFlow(t *testing.T) {
	t.Parallel()

	s := newServices(t)
	app := s.app(t)
	ctx := context.Background()

	_, err := app.Categories().List(ctx)
	require.ErrorIs(t, err, bridge.ErrNotBridged)

	id, err := app.Auth().Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "u1", id.ID)
	require.Equal(t, auth.SignedIn, app.Auth().State())
	require.NoError(t, app.Bridge().Ready())

	list, err := app.Categories().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	app.Auth().Logout(ctx)
	require.Equal(t, auth.SignedOut, app.Auth().State())
	_, err = app.Categories().List(ctx)
	require.ErrorIs(t, err, bridge.ErrNotBridged)

	for _, h := range s.csrfOnPrimary() {
		require.Empty(t, h)
	}
}

func TestApp_Config(t *testing.T) {
	t.Parallel()

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Parallel()
		app, err := internal.New(internal.WithDefaults(runtimeconfig.Defaults{
			AuthAPIBaseURL: "http://auth.local",
			AppVersion:     "dev",
		}))
		require.NoError(t, err)

		cfg := app.Config()
		require.Equal(t, "http://auth.local", cfg.AuthAPIBaseURL)
		require.Equal(t, "dev", cfg.AppVersion)
		require.Equal(t, "http://auth.local", app.Primary().BaseURL())
		require.Empty(t, app.Resource().BaseURL())
	})

	t.Run("runtime values win", func(t *testing.T) {
		t.Parallel()
		s := newServices(t)
		app := s.app(t)

		require.Equal(t, s.resource.URL, app.Resource().BaseURL())
		require.Equal(t, s.primary.URL, app.Primary().BaseURL())
		require.Equal(t, "1.2.3", app.Config().AppVersion)
	})

	notices := func(t *testing.T, src runtimeconfig.Source) string {
		t.Helper()
		var buf bytes.Buffer
		app, err := internal.New(
			internal.WithRuntimeSource(src),
			internal.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		require.NoError(t, err)
		app.Config()
		app.Config()
		return buf.String()
	}

	t.Run("empty runtime config is noted once", func(t *testing.T) {
		t.Parallel()
		out := notices(t, runtimeconfig.Static(runtimeconfig.Config{}))
		require.Equal(t, 1, strings.Count(out, "runtime config empty"))
		require.NotContains(t, out, "runtime config unavailable")
	})

	t.Run("failed runtime config is warned once", func(t *testing.T) {
		t.Parallel()
		out := notices(t, func() (runtimeconfig.Config, error) {
			return runtimeconfig.Config{}, errors.New("boom")
		})
		require.Equal(t, 1, strings.Count(out, "runtime config unavailable"))
		require.NotContains(t, out, "runtime config empty")
	})

	t.Run("populated runtime config is silent", func(t *testing.T) {
		t.Parallel()
		out := notices(t, runtimeconfig.Static(runtimeconfig.Config{AppVersion: "1.2.3"}))
		require.NotContains(t, out, "runtime config")
	})
}

func TestApp_Handler(t *testing.T) {
	t.Parallel()

	s := newServices(t)
	srv := httptest.NewServer(s.app(t).Handler())
	t.Cleanup(srv.Close)

	t.Run("runtime script round-trips", func(t *testing.T) {
		resp, err := http.Get(srv.URL + internal.RuntimeConfigPath)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/javascript; charset=utf-8", resp.Header.Get("Content-Type"))
		require.NotEmpty(t, resp.Header.Get(apiclient.RequestIDHeader))

		cfg, err := runtimeconfig.FromScript(body)
		require.NoError(t, err)
		require.Equal(t, s.resource.URL, cfg.APIBaseURL)
		require.Equal(t, "1.2.3", cfg.AppVersion)
	})

	t.Run("readiness reaches both backends", func(t *testing.T) {
		resp, err := http.Get(srv.URL + internal.ReadinessPath + "?format=json")
		require.NoError(t, err)
		defer resp.Body.Close()

		var report struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "healthy", report.Status)
	})

	t.Run("liveness", func(t *testing.T) {
		resp, err := http.Get(srv.URL + internal.LivenessPath)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestApp_Handler_BackendDown(t *testing.T) {
	t.Parallel()

	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	app, err := internal.New(internal.WithRuntimeSource(runtimeconfig.Static(runtimeconfig.Config{
		APIBaseURL:     downURL,
		AuthAPIBaseURL: downURL,
	})))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, internal.ReadinessPath, nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	app, err := internal.New()
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hookCalled := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- app.Run(
			internal.Listener(ln),
			internal.BaseContext(ctx),
			internal.ShutdownTimeout(time.Second),
			internal.ShutdownHook(func(context.Context) error {
				close(hookCalled)
				return nil
			}),
		)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + internal.LivenessPath)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-hookCalled
}
