package runtimeconfig

import "errors"

var (
	// ErrNoPayload is returned when a bootstrap script contains no configuration object.
	ErrNoPayload = errors.New("runtimeconfig: no configuration payload")

	// ErrFetchFailed is returned when the bootstrap script cannot be fetched.
	ErrFetchFailed = errors.New("runtimeconfig: failed to fetch bootstrap script")

	// ErrReadFailed is returned when a configuration file cannot be read or parsed.
	ErrReadFailed = errors.New("runtimeconfig: failed to read config file")
)
