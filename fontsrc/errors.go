package fontsrc

import "errors"

// Sentinel errors for the fontsrc package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontsrc: empty font data")

	// ErrGlyphNotFound is returned when a glyph ID is not present in
	// the font.
	ErrGlyphNotFound = errors.New("fontsrc: glyph not found")
)
