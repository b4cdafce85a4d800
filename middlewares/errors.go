package middlewares

import (
	"errors"
	"fmt"
)

// PanicError is a recovered handler panic.
type PanicError struct {
	Value any
	Stack []byte // nil when stack capture is disabled
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts the PanicError from err if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
