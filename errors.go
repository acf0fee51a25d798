package cub

import "errors"

// Canvas construction and parsing errors.
var (
	// ErrInvalidSize is returned when canvas dimensions are not positive
	// or their pixel count is too large to address.
	ErrInvalidSize = errors.New("cub: invalid canvas size")

	// ErrPixelData is returned when a decoded pixel buffer does not match
	// the declared dimensions.
	ErrPixelData = errors.New("cub: pixel data does not match dimensions")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("cub: invalid color")

	// ErrInvalidBlendMode is returned when a blend mode name is not known.
	ErrInvalidBlendMode = errors.New("cub: invalid blend mode")
)
