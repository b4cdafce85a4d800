package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/focus/pkg/apiclient"
	"github.com/dmitrymomot/focus/pkg/logger"
)

// SessionPath is the resource service endpoint that mints a session.
const SessionPath = "/auth/session"

const flightKey = "bridge"

// Credential is a primary-service bearer value. It is used for one exchange
// and never stored; it renders as a redacted value in logs.
type Credential string

// LogValue implements slog.LogValuer.
func (Credential) LogValue() slog.Value {
	return slog.StringValue(logger.Redacted)
}

// String hides the value from fmt verbs.
func (Credential) String() string {
	return logger.Redacted
}

// Bridge mints resource sessions from primary credentials.
type Bridge struct {
	client  *apiclient.Client
	logger  *slog.Logger
	group   singleflight.Group
	mu      sync.RWMutex
	epoch   uint64 // bumped by Reset
	lastErr error
	ready   bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Bridge that calls the resource service through client.
// The client must share its cookie jar with the resource modules.
func New(client *apiclient.Client, opts ...Option) *Bridge {
	b := &Bridge{
		client: client,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ensure exchanges cred for a resource session. An empty cred fails with
// ErrNoCredential without any request and leaves Ready unchanged. If an exchange is already in flight,
// Ensure waits for it and returns its result instead of starting another.
// The caller's context only bounds its own wait; the shared exchange runs
// under the context of the caller that started it. An exchange that was in
// flight when Reset ran fails with ErrSuperseded and leaves Ready unchanged.
func (b *Bridge) Ensure(ctx context.Context, cred Credential) error {
	if cred == "" {
		return ErrNoCredential
	}

	b.mu.RLock()
	epoch := b.epoch
	b.mu.RUnlock()

	ch := b.group.DoChan(flightKey, func() (any, error) {
		err := b.exchange(ctx, cred)
		return nil, b.record(epoch, err)
	})

	select {
	case res := <-ch:
		if res.Shared {
			b.logger.DebugContext(ctx, "joined in-flight session exchange")
		}
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bridge) exchange(ctx context.Context, cred Credential) error {
	tok := &oauth2.Token{AccessToken: string(cred), TokenType: "Bearer"}
	header := make(http.Header)
	tok.SetAuthHeader(&http.Request{Header: header})

	_, err := b.client.Do(ctx, SessionPath,
		apiclient.WithMethod(http.MethodPost),
		apiclient.WithHeader("Authorization", header.Get("Authorization")),
	)
	if err != nil {
		b.logger.WarnContext(ctx, "session exchange failed",
			slog.Int("status", apiclient.StatusOf(err)),
			slog.String("error", err.Error()),
		)
		return errors.Join(ErrExchangeFailed, err)
	}

	b.logger.InfoContext(ctx, "resource session established")
	return nil
}

func (b *Bridge) record(epoch uint64, err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if epoch != b.epoch {
		b.logger.Debug("discarding session exchange started before reset")
		return ErrSuperseded
	}
	b.ready = err == nil
	b.lastErr = err
	return err
}

// Ready returns nil if the last exchange succeeded. Otherwise it returns
// ErrNotBridged, joined with the last failure when there was one.
func (b *Bridge) Ready() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.ready {
		return nil
	}
	if b.lastErr != nil {
		return errors.Join(ErrNotBridged, b.lastErr)
	}
	return ErrNotBridged
}

// Reset forgets the last outcome and detaches any in-flight exchange, so a
// later Ensure starts a fresh one. Called on logout.
func (b *Bridge) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.epoch++
	b.ready = false
	b.lastErr = nil
	b.group.Forget(flightKey)
}
