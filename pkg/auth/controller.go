package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/bridge"
	"github.com/dmitrymomot/focus/pkg/logger"
)

// Primary identity service routes.
const (
	PathAuthenticate = "/auth/authenticate"
	PathProfile      = "/auth/profile"
	PathLogin        = "/auth/login"
	PathRegister     = "/auth/register"
	PathLogout       = "/auth/logout"
)

// DefaultCredentialCookie is the primary service cookie holding its bearer value.
const DefaultCredentialCookie = "access_token"

// Controller drives sign-in against the primary service and keeps the
// resource session bridged.
type Controller struct {
	primary          *apiclient.Client
	resource         *apiclient.Client
	bridge           *bridge.Bridge
	logger           *slog.Logger
	identity         *Identity
	credentialCookie string
	mu               sync.RWMutex
	seq              uint64 // sequence of the latest started operation
	signedInAt       uint64 // seq when the latest sign-in was applied
	clearedAt        uint64 // seq at the latest logout; older operations no longer apply
	inflight         int
	logins           int
	state            State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCredentialCookie sets the name of the primary service cookie that
// Authenticate reads the bridge credential from.
func WithCredentialCookie(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.credentialCookie = name
		}
	}
}

// NewController creates a Controller. primary must not carry a CSRF binding;
// resource is used for logout; b performs the session exchange.
func NewController(primary, resource *apiclient.Client, b *bridge.Bridge, opts ...Option) *Controller {
	c := &Controller{
		primary:          primary,
		resource:         resource,
		bridge:           b,
		logger:           logger.NewNope(),
		credentialCookie: DefaultCredentialCookie,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Identity returns a copy of the signed-in identity, or nil.
func (c *Controller) Identity() *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return nil
	}
	id := *c.identity
	return &id
}

// Authenticate resumes a primary session. It returns nil, nil when there is
// none. With a valid session it bridges the resource session (best effort)
// and returns the profile; a failed profile fetch returns ErrProfileUnavailable.
func (c *Controller) Authenticate(ctx context.Context) (*Identity, error) {
	seq := c.begin(false)

	if _, err := c.primary.Do(ctx, PathAuthenticate); err != nil {
		c.logger.DebugContext(ctx, "no primary session", slog.Int("status", apiclient.StatusOf(err)))
		c.finish(seq, false, signOut, nil)
		return nil, nil
	}

	c.bridgeBestEffort(ctx, c.cookieCredential())

	id, err := c.fetchProfile(ctx)
	if err != nil {
		c.finish(seq, false, signOut, nil)
		return nil, err
	}

	c.finish(seq, false, signIn, id)
	return id, nil
}

// Login signs in with email and password. A rejected login returns an *Error
// matching ErrInvalidCredentials; a transport failure returns the *apiclient.Error.
// A failed bridge does not fail the login.
func (c *Controller) Login(ctx context.Context, email, password string) (*Identity, error) {
	seq := c.begin(true)

	resp, err := c.primary.Do(ctx, PathLogin,
		apiclient.WithMethod(http.MethodPost),
		apiclient.WithBody(map[string]string{"email": email, "password": password}),
	)
	if err != nil {
		c.finish(seq, true, keep, nil)
		if errors.Is(err, apiclient.ErrNetwork) {
			return nil, err
		}
		return nil, &Error{
			Kind:    ErrInvalidCredentials,
			Message: apiclient.Message(err, MessageLoginFailed),
			Status:  apiclient.StatusOf(err),
			cause:   err,
		}
	}

	id, parseErr := parseIdentity(resp.Body)
	token := parseToken(resp.Body)

	c.bridgeBestEffort(ctx, bridge.Credential(token))

	if parseErr != nil {
		// Cookie-only backends answer login with an empty body.
		if id, err = c.fetchProfile(ctx); err != nil {
			c.finish(seq, true, keep, nil)
			return nil, err
		}
	}

	c.finish(seq, true, signIn, id)
	return id, nil
}

// Register creates an account. It neither signs in nor bridges. A rejected
// registration returns an *Error matching ErrRegistrationFailed. The returned
// identity is nil when the service answers without a user.
func (c *Controller) Register(ctx context.Context, email, password, name string) (*Identity, error) {
	body := map[string]string{"email": email, "password": password}
	if name != "" {
		body["name"] = name
	}

	resp, err := c.primary.Do(ctx, PathRegister,
		apiclient.WithMethod(http.MethodPost),
		apiclient.WithBody(body),
	)
	if err != nil {
		if errors.Is(err, apiclient.ErrNetwork) {
			return nil, err
		}
		return nil, &Error{
			Kind:    ErrRegistrationFailed,
			Message: apiclient.Message(err, MessageRegistrationFailed),
			Status:  apiclient.StatusOf(err),
			cause:   err,
		}
	}

	id, _ := parseIdentity(resp.Body)
	return id, nil
}

// Logout notifies the resource service, then the primary service, and
// discards local state. Failures are logged and never returned.
func (c *Controller) Logout(ctx context.Context) {
	if _, err := c.resource.Do(ctx, PathLogout, apiclient.WithMethod(http.MethodPost)); err != nil {
		c.logger.WarnContext(ctx, "resource logout failed", slog.String("error", err.Error()))
	}
	if _, err := c.primary.Do(ctx, PathLogout, apiclient.WithMethod(http.MethodPost)); err != nil {
		c.logger.WarnContext(ctx, "primary logout failed", slog.String("error", err.Error()))
	}

	c.bridge.Reset()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.clearedAt = c.seq
	c.identity = nil
	c.settle()
}

func (c *Controller) fetchProfile(ctx context.Context) (*Identity, error) {
	resp, err := c.primary.Do(ctx, PathProfile)
	if err != nil {
		c.logger.ErrorContext(ctx, "profile fetch failed", slog.String("error", err.Error()))
		return nil, errors.Join(ErrProfileUnavailable, err)
	}
	id, err := parseIdentity(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "profile response unusable", slog.String("error", err.Error()))
		return nil, errors.Join(ErrProfileUnavailable, err)
	}
	return id, nil
}

func (c *Controller) bridgeBestEffort(ctx context.Context, cred bridge.Credential) {
	if err := c.bridge.Ensure(ctx, cred); err != nil {
		c.logger.WarnContext(ctx, "resource session not bridged", slog.String("error", err.Error()))
	}
}

// cookieCredential reads the primary service's bearer cookie from the jar.
func (c *Controller) cookieCredential() bridge.Credential {
	jar := c.primary.Jar()
	if jar == nil {
		return ""
	}
	v, err := jar.Value(c.primary.URL("/"), c.credentialCookie)
	if err != nil {
		return ""
	}
	return bridge.Credential(v)
}

// outcome is what a finished operation learned about the primary session.
type outcome int

const (
	keep    outcome = iota // failed without evidence either way
	signIn                 // session valid, identity known
	signOut                // no valid session
)

// begin starts an operation and marks the controller as authenticating.
func (c *Controller) begin(login bool) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.inflight++
	if login {
		c.logins++
	}
	c.state = Authenticating
	return c.seq
}

// finish ends operation seq. Nothing applies from an operation that started
// before the latest logout. A sign-in always applies. A sign-out applies only
// when no login is in flight and the operation started after the latest
// sign-in, since an earlier check cannot have seen that session.
func (c *Controller) finish(seq uint64, login bool, out outcome, id *Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if login {
		c.logins--
	}
	if seq > c.clearedAt {
		switch out {
		case signIn:
			c.identity = id
			c.signedInAt = c.seq
		case signOut:
			if c.logins == 0 && seq > c.signedInAt {
				c.identity = nil
			}
		}
	}
	c.settle()
}

// settle derives the state. Callers hold mu.
func (c *Controller) settle() {
	switch {
	case c.inflight > 0:
		c.state = Authenticating
	case c.identity != nil:
		c.state = SignedIn
	default:
		c.state = SignedOut
	}
}
