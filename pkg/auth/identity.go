package auth

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Identity is the user as known to the primary identity service.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

var errNoIdentity = errors.New("auth: response carries no user")

// parseIdentity accepts both {"user": {...}} and a bare user object.
func parseIdentity(body []byte) (*Identity, error) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil, errNoIdentity
	}
	raw := []byte(gjson.GetBytes(body, "user").Raw)
	if len(raw) == 0 || raw[0] != '{' {
		raw = body
	}
	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, errors.Join(errNoIdentity, err)
	}
	if id.ID == "" {
		return nil, errNoIdentity
	}
	return &id, nil
}

// parseToken returns the "token" field of a login response, if any.
func parseToken(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	return gjson.GetBytes(body, "token").String()
}
