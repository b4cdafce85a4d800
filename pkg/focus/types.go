package focus

import (
	"encoding/json"
	"time"
)

// Category groups focus sessions.
type Category struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Archived   bool   `json:"archived"`
}

// Session is a focus session. Fields the service adds beyond the known ones
// are kept in Extra.
type Session struct {
	SessionID  string                     `json:"sessionId"`
	StartedAt  time.Time                  `json:"startedAt"`
	EndAt      *time.Time                 `json:"endAt,omitempty"`
	CategoryID *string                    `json:"categoryId,omitempty"`
	Note       *string                    `json:"note,omitempty"`
	Extra      map[string]json.RawMessage `json:"-"`
}

// Running reports whether the session has not ended.
func (s *Session) Running() bool {
	return s.EndAt == nil
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (s *Session) UnmarshalJSON(data []byte) error {
	type plain Session
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range [...]string{"sessionId", "startedAt", "endAt", "categoryId", "note"} {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*s = Session(p)
	return nil
}

// CreateCategoryInput is the body of a category create call.
type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type categoryRef struct {
	CategoryID string `json:"categoryId"`
}
