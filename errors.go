package ggchart

import "errors"

// Sentinel errors returned by New. They are wrapped with details, so test
// for them with errors.Is.
var (
	// ErrInvalidSize is returned when the canvas width or height is not positive.
	ErrInvalidSize = errors.New("ggchart: width and height must be positive")

	// ErrInvalidSegments is returned when an axis has fewer than two segments.
	ErrInvalidSegments = errors.New("ggchart: segment count must be at least 2")

	// ErrInvalidColor is returned when a color spec cannot be parsed.
	ErrInvalidColor = errors.New("ggchart: invalid color")

	// ErrInvalidConfig is returned for other out-of-range settings such as
	// negative padding or bar width.
	ErrInvalidConfig = errors.New("ggchart: invalid config")
)
