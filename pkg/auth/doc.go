// Package auth is the sign-in state machine exposed to the dashboard.
//
// A [Controller] composes calls to the primary identity service with a
// best-effort [bridge.Bridge] exchange against the resource service:
//
//	SignedOut -> Authenticating -> SignedIn
//	SignedIn  -> SignedOut   (Logout, or Authenticate finding no session)
//
// Bridging is a sub-step of signing in, not a state: when it fails the user
// stays signed in against the primary service and the failure is logged.
//
// # Usage
//
//	ctrl := auth.NewController(primary, resource, b, auth.WithLogger(log))
//
//	// cold start
//	user, err := ctrl.Authenticate(ctx)
//	if err != nil {
//		// errors.Is(err, auth.ErrProfileUnavailable)
//	}
//	if user == nil {
//		// not signed in
//	}
//
//	user, err = ctrl.Login(ctx, email, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//		msg := err.Error() // server message or "Login failed"
//	}
//
//	ctrl.Logout(ctx) // never fails
//
// # Bridge Credential
//
// Login bridges with the "token" field of the login response. Authenticate,
// which has no login response, bridges with the primary service's credential
// cookie (see [WithCredentialCookie]). The two sources are never mixed: a
// login response without a token skips the bridge rather than falling back
// to the cookie.
package auth
