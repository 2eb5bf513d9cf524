// Package fontsrc provides read access to a font's outline geometry.
//
// A Source answers three questions about a parsed font: which glyph a
// codepoint maps to, what path a glyph draws, and what the font-wide
// bounding box is. Everything else about the font file (tables, names,
// variations) is out of scope; the atlas pipeline consumes exactly this
// surface.
//
// The parsing backend is pluggable through the Parser interface.
// By default, golang.org/x/image/font/opentype is used. An alternate
// backend built on github.com/go-text/typesetting is registered under
// the name "gotext":
//
//	src, err := fontsrc.New(data, fontsrc.WithParser("gotext"))
//
// Custom backends can be registered with RegisterParser.
package fontsrc

// GlyphID identifies a glyph within a font.
// ID 0 is the .notdef glyph in every OpenType font, so a codepoint
// mapping to 0 is treated as "not covered".
type GlyphID uint32

// Point is a position in font units.
// The Y axis increases up, matching font design space. Backends whose
// underlying library uses a y-down convention convert before returning
// points.
type Point struct {
	X, Y float32
}

// Box is the font-wide bounding box in font units: the union of all
// glyph bounding boxes, as recorded in the font's head table (or
// derived from outline geometry for backends that do not expose the
// head table).
type Box struct {
	// Min is the lower-left corner.
	Min Point

	// Size is the box width and height.
	Size Point
}

// Glyph is the outline geometry of a single glyph.
type Glyph struct {
	// Segments is the glyph's path, in drawing order. Every contour
	// ends with an explicit SegmentOpClose event.
	Segments []Segment

	// Advance is the horizontal advance width in font units.
	Advance float32
}

// Source is a parsed font, reduced to the queries the atlas pipeline
// needs. Implementations are returned by New and are not required to
// be safe for concurrent use.
type Source interface {
	// GlyphIndex returns the glyph mapped to r.
	// The second result is false when the font does not cover r.
	GlyphIndex(r rune) (GlyphID, bool)

	// Glyph returns the outline geometry for a glyph. A glyph with no
	// drawable outline (such as a space) yields zero segments and a
	// nil error.
	Glyph(gid GlyphID) (*Glyph, error)

	// Bounds returns the global font bounding box shared by all
	// glyphs.
	Bounds() Box
}

// Parser is a font parsing backend.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a Source.
	Parse(data []byte) (Source, error)
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]Parser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under a name, making
// it available to New via WithParser.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

// Option configures New.
type Option func(*config)

// config holds configuration for New.
type config struct {
	parserName string
}

// defaultConfig returns the default source configuration.
func defaultConfig() config {
	return config{
		parserName: defaultParserName,
	}
}

// WithParser selects the font parsing backend by registered name.
// The default is "ximage".
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// New parses font data (TTF or OTF) into a Source using the configured
// backend.
func New(data []byte, opts ...Option) (Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return getParser(cfg.parserName).Parse(data)
}
