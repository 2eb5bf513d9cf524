package fontsrc

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (Source, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}

	src := &ximageSource{font: f}

	// Load glyphs at ppem == unitsPerEm so that the 26.6 fixed-point
	// coordinates sfnt hands back are font units.
	src.ppem = fixed.Int26_6(int32(f.UnitsPerEm())) << 6

	rect, err := f.Bounds(&src.buf, src.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to read font bounds: %w", err)
	}
	// sfnt reports bounds with the y axis increasing down; flip back
	// to font design space (y up). Width and height are unaffected.
	src.bounds = Box{
		Min: Point{
			X: fixedToFloat(rect.Min.X),
			Y: -fixedToFloat(rect.Max.Y),
		},
		Size: Point{
			X: fixedToFloat(rect.Max.X - rect.Min.X),
			Y: fixedToFloat(rect.Max.Y - rect.Min.Y),
		},
	}

	return src, nil
}

// ximageSource implements Source on top of sfnt.Font.
type ximageSource struct {
	font   *sfnt.Font
	ppem   fixed.Int26_6
	bounds Box

	// buf is reused across sfnt operations.
	buf sfnt.Buffer
}

// GlyphIndex implements Source.GlyphIndex.
func (s *ximageSource) GlyphIndex(r rune) (GlyphID, bool) {
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// Glyph implements Source.Glyph.
func (s *ximageSource) Glyph(gid GlyphID) (*Glyph, error) {
	segments, err := s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), s.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, fmt.Errorf("%w: glyph %d", ErrGlyphNotFound, gid)
		}
		return nil, fmt.Errorf("fontsrc: failed to load glyph %d: %w", gid, err)
	}

	advance, err := s.font.GlyphAdvance(&s.buf, sfnt.GlyphIndex(gid), s.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to read advance of glyph %d: %w", gid, err)
	}

	g := &Glyph{Advance: fixedToFloat(advance)}
	if len(segments) == 0 {
		// No drawable outline (space and friends).
		return g, nil
	}

	segs := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubeTo
			out.Args[0] = fixedPoint(seg.Args[0])
			out.Args[1] = fixedPoint(seg.Args[1])
			out.Args[2] = fixedPoint(seg.Args[2])
		}
		segs = append(segs, out)
	}
	g.Segments = closeContours(segs)
	return g, nil
}

// Bounds implements Source.Bounds.
func (s *ximageSource) Bounds() Box {
	return s.bounds
}

// fixedPoint converts a fixed.Point26_6 to a Point, flipping the
// y axis back to font design space (sfnt yields y-down coordinates).
func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: fixedToFloat(p.X),
		Y: -fixedToFloat(p.Y),
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
