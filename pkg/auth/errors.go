package auth

import "errors"

var (
	// ErrInvalidCredentials is matched by login failures reported by the primary service.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrRegistrationFailed is matched by registration failures reported by the primary service.
	ErrRegistrationFailed = errors.New("auth: registration failed")

	// ErrProfileUnavailable is returned when the session is valid but the profile cannot be fetched.
	ErrProfileUnavailable = errors.New("auth: profile unavailable")
)

// Fallback messages shown when the server supplies none.
const (
	MessageLoginFailed        = "Login failed"
	MessageRegistrationFailed = "Registration failed"
)

// Error is a sign-in or registration failure carrying a user-facing message.
// It matches its Kind with errors.Is.
type Error struct {
	Kind    error
	cause   error
	Message string
	Status  int
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying API error.
func (e *Error) Unwrap() error {
	return e.cause
}
