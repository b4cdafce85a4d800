package cookie

import "errors"

// Errors.
var (
	ErrNotFound   = errors.New("cookie: not found")
	ErrInvalidURL = errors.New("cookie: invalid url")
)
