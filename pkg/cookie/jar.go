package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// Jar is a cookie jar that is written only by server responses.
// It implements http.CookieJar so it can be attached to an http.Client.
type Jar struct {
	jar *cookiejar.Jar
}

// NewJar creates an empty jar using the public suffix list for domain rules.
func NewJar() (*Jar, error) {
	j, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie: create jar: %w", err)
	}
	return &Jar{jar: j}, nil
}

// SetCookies implements http.CookieJar. It is called by http.Client when a
// response carries Set-Cookie headers.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// Value returns the value of the named cookie that would be sent to rawURL.
// Returns ErrNotFound if no such cookie is present.
func (j *Jar) Value(rawURL, name string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Join(ErrInvalidURL, fmt.Errorf("parse %q: %w", rawURL, err))
	}
	if u.Host == "" {
		return "", errors.Join(ErrInvalidURL, fmt.Errorf("no host in %q", rawURL))
	}
	for _, c := range j.jar.Cookies(u) {
		if c.Name == name {
			return c.Value, nil
		}
	}
	return "", ErrNotFound
}
