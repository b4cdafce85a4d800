package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/focus/pkg/cookie"
)

func TestJar_Value(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "focus_csrf", Value: "csrf-1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "focus_sid", Value: "sid-1", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	jar, err := cookie.NewJar()
	require.NoError(t, err)

	t.Run("missing before any response", func(t *testing.T) {
		_, err := jar.Value(srv.URL, "focus_csrf")
		require.ErrorIs(t, err, cookie.ErrNotFound)
	})

	client := &http.Client{Jar: jar}
	resp, err := client.Post(srv.URL+"/auth/session", "application/json", nil)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	t.Run("set by response", func(t *testing.T) {
		v, err := jar.Value(srv.URL, "focus_csrf")
		require.NoError(t, err)
		require.Equal(t, "csrf-1", v)

		sid, err := jar.Value(srv.URL+"/categories/list", "focus_sid")
		require.NoError(t, err)
		require.NotEmpty(t, sid)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := jar.Value("not a url", "focus_csrf")
		require.ErrorIs(t, err, cookie.ErrInvalidURL)

		_, err = jar.Value("://bad", "focus_csrf")
		require.ErrorIs(t, err, cookie.ErrInvalidURL)
	})
}
