package focus

import (
	"regexp"
	"strings"
)

// ColorPreset is a named category color.
type ColorPreset struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ColorPresets are the category colors offered by the dashboard.
// The first entry is the default.
var ColorPresets = []ColorPreset{
	{Key: "red", Name: "Red", Hex: "#ef4444"},
	{Key: "orange", Name: "Orange", Hex: "#f97316"},
	{Key: "yellow", Name: "Yellow", Hex: "#eab308"},
	{Key: "green", Name: "Green", Hex: "#22c55e"},
	{Key: "cyan", Name: "Cyan", Hex: "#06b6d4"},
	{Key: "blue", Name: "Blue", Hex: "#3b82f6"},
	{Key: "violet", Name: "Violet", Hex: "#8b5cf6"},
	{Key: "pink", Name: "Pink", Hex: "#ec4899"},
	{Key: "slate", Name: "Slate", Hex: "#64748b"},
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultColor returns the hex value used when no color is picked.
func DefaultColor() string {
	return ColorPresets[0].Hex
}

// LookupColor finds a preset by key or by hex value, case-insensitively.
func LookupColor(v string) (ColorPreset, bool) {
	for _, p := range ColorPresets {
		if strings.EqualFold(p.Key, v) || strings.EqualFold(p.Hex, v) {
			return p, true
		}
	}
	return ColorPreset{}, false
}

// ColorName returns the preset name for a hex value, or the value itself.
func ColorName(hex string) string {
	if p, ok := LookupColor(hex); ok {
		return p.Name
	}
	return hex
}

// NormalizeColor maps a preset key or hex value to a lower-case hex value.
// Empty input yields DefaultColor.
func NormalizeColor(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultColor(), nil
	}
	if p, ok := LookupColor(v); ok {
		return p.Hex, nil
	}
	if hexColor.MatchString(v) {
		return strings.ToLower(v), nil
	}
	return "", ErrUnknownColor
}
