package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

var (
	// ErrNetwork is returned when no HTTP response was received.
	ErrNetwork = errors.New("apiclient: network failure")

	// ErrNoBaseURL is returned when the request URL cannot be made absolute.
	ErrNoBaseURL = errors.New("apiclient: no base url")

	// ErrEncode is returned when the request body cannot be encoded.
	ErrEncode = errors.New("apiclient: failed to encode request body")
)

// Error is a failed API call. Status is the HTTP status code, or 0 when the
// request never got a response.
type Error struct {
	Message string
	Details json.RawMessage // parsed JSON error body, if the server sent one
	Status  int
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

func newHTTPError(status int, details json.RawMessage) *Error {
	return &Error{
		Message: fmt.Sprintf("Request failed: %d", status),
		Status:  status,
		Details: details,
	}
}

func newNetworkError(cause error) *Error {
	return &Error{
		Message: "Request failed: network error",
		err:     errors.Join(ErrNetwork, cause),
	}
}

// AsError extracts the *Error from err if present.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if e, ok := AsError(err); ok {
		return e.Status
	}
	return 0
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	return err != nil && StatusOf(err) == status
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// Message returns the server-supplied message of err ("message", then
// "error" field of the JSON body), or fallback when there is none.
func Message(err error, fallback string) string {
	e, ok := AsError(err)
	if !ok || len(e.Details) == 0 {
		return fallback
	}
	for _, key := range [...]string{"message", "error"} {
		if v := gjson.GetBytes(e.Details, key); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return fallback
}
