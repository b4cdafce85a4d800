// Package cookie provides the client-side cookie jar shared by the primary
// identity service and the resource service.
//
// The jar is an opaque capability: backends write to it through Set-Cookie
// response headers and the client only ever reads a single value back out of
// it, the resource service's CSRF token.
//
// # Basic Usage
//
//	jar, err := cookie.NewJar()
//	if err != nil {
//		return err
//	}
//
//	client := &http.Client{Jar: jar}
//
//	// after the resource service has set its cookies
//	token, err := jar.Value("https://api.example.com", "focus_csrf")
//	if errors.Is(err, cookie.ErrNotFound) {
//		// not bridged yet
//	}
//
// The jar never exposes a way to set cookies directly.
package cookie
