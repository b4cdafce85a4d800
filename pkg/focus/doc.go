// Package focus holds the resource service endpoint modules: categories and
// focus sessions.
//
// Both are thin callers of [apiclient.Request]. Before any request they
// consult a [Gate]; when no resource session has been bridged they fail fast
// with the gate's error instead of calling the service unauthenticated.
//
//	cats := focus.NewCategories(resourceClient, b)
//	list, err := cats.List(ctx)
//	if errors.Is(err, bridge.ErrNotBridged) {
//		// sign in again
//	}
//
//	sessions := focus.NewSessions(resourceClient, b)
//	running, err := sessions.Running(ctx) // nil, nil when nothing runs
package focus
