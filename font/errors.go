package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrLibraryClosed is returned when a closed Library is used.
	ErrLibraryClosed = errors.New("font: library closed")

	// ErrFaceClosed is returned when a closed Face is rendered.
	ErrFaceClosed = errors.New("font: face closed")

	// ErrInvalidSize is returned for a non-positive pixel size.
	ErrInvalidSize = errors.New("font: invalid size")

	// ErrUnknownBackend is returned when no backend has the requested name.
	ErrUnknownBackend = errors.New("font: unknown backend")
)
