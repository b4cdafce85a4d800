package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Reachable returns a check that sends HEAD to baseURL. Any HTTP status counts
// as reachable. An empty baseURL fails with ErrNotConfigured.
func Reachable(hc *http.Client, baseURL string) CheckFunc {
	if hc == nil {
		hc = http.DefaultClient
	}
	return func(ctx context.Context) error {
		if baseURL == "" {
			return ErrNotConfigured
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return fmt.Errorf("health: build probe for %q: %w", baseURL, err)
		}
		resp, err := hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ErrCheckTimeout
			}
			return errors.Join(ErrUnreachable, err)
		}
		_ = resp.Body.Close()
		return nil
	}
}
