package focus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/focus/pkg/apiclient"
)

// Session routes on the resource service.
const (
	PathSessionsRunning = "/sessions/running"
	PathSessionsStart   = "/sessions/start"
	PathSessionsResume  = "/sessions/resume"
	PathSessionsStop    = "/sessions/stop"
)

// Sessions calls the focus session endpoints.
type Sessions struct {
	client *apiclient.Client
	gate   Gate
}

// NewSessions returns a session module. A nil gate never blocks.
func NewSessions(client *apiclient.Client, gate Gate) *Sessions {
	return &Sessions{client: client, gate: gateOrOpen(gate)}
}

// Running returns the session in progress, or nil when none is.
// The service answers 404 when nothing runs.
func (s *Sessions) Running(ctx context.Context) (*Session, error) {
	if err := s.gate.Ready(); err != nil {
		return nil, err
	}
	sess, err := apiclient.Request[Session](ctx, s.client, PathSessionsRunning)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("running session: %w", err)
	}
	if sess == nil || sess.SessionID == "" {
		return nil, nil
	}
	return sess, nil
}

// Start begins a new session.
func (s *Sessions) Start(ctx context.Context) error {
	return s.post(ctx, PathSessionsStart)
}

// Resume continues the last stopped session.
func (s *Sessions) Resume(ctx context.Context) error {
	return s.post(ctx, PathSessionsResume)
}

// Stop ends the running session.
func (s *Sessions) Stop(ctx context.Context) error {
	return s.post(ctx, PathSessionsStop)
}

func (s *Sessions) post(ctx context.Context, path string) error {
	if err := s.gate.Ready(); err != nil {
		return err
	}
	if _, err := s.client.Do(ctx, path, apiclient.WithMethod(http.MethodPost)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
