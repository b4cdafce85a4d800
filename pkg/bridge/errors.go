package bridge

import "errors"

var (
	// ErrNoCredential is returned when Ensure is called without a primary credential.
	ErrNoCredential = errors.New("bridge: no primary credential")

	// ErrNotBridged is returned by Ready when no resource session has been
	// established since construction or the last Reset.
	ErrNotBridged = errors.New("bridge: resource session not established")

	// ErrExchangeFailed is returned when the resource service rejects the exchange.
	ErrExchangeFailed = errors.New("bridge: session exchange failed")

	// ErrSuperseded is returned by Ensure when Reset ran while its exchange
	// was in flight.
	ErrSuperseded = errors.New("bridge: exchange superseded by reset")
)
