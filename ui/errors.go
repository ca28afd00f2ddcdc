package ui

import "github.com/pkg/errors"

var (
	// ErrMissingDefaults is returned by a factory whose style defaults were
	// never registered on the Controller.
	ErrMissingDefaults = errors.New("style defaults not set")

	// ErrInvalidStyle is returned when a style has a nil texture or font,
	// or a non-positive title bar thickness.
	ErrInvalidStyle = errors.New("invalid style")
)
