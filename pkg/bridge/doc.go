// Package bridge exchanges a primary identity credential for a resource
// service session.
//
// [Bridge.Ensure] posts the credential as a bearer token to the resource
// service's session endpoint. The response sets the session-id and CSRF
// cookies in the shared jar; nothing is kept in memory except whether the
// last exchange succeeded.
//
// Concurrent Ensure calls are coalesced: at most one exchange is in flight
// and every caller receives its outcome.
//
// # Usage
//
//	b := bridge.New(resourceClient, bridge.WithLogger(log))
//	if err := b.Ensure(ctx, bridge.Credential(token)); err != nil {
//		// degraded: resource features unavailable
//	}
//
//	// resource modules gate on the last outcome
//	if err := b.Ready(); err != nil {
//		return err // errors.Is(err, bridge.ErrNotBridged)
//	}
package bridge
