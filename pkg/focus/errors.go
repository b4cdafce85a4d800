package focus

import "errors"

var (
	// ErrEmptyName is returned when creating a category without a name.
	ErrEmptyName = errors.New("focus: category name is required")

	// ErrUnknownColor is returned when a category color is not a preset key or hex value.
	ErrUnknownColor = errors.New("focus: unknown color")

	// ErrEmptyID is returned when a category call is made without an ID.
	ErrEmptyID = errors.New("focus: category id is required")
)
