package internal

import "errors"

var (
	// ErrJar is returned when the cookie jar cannot be created.
	ErrJar = errors.New("internal: cookie jar")

	// ErrServe is returned when the bootstrap server fails to start.
	ErrServe = errors.New("internal: serve")
)
