package fontsrc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements Parser using github.com/go-text/typesetting.
// It is registered under the name "gotext" as an alternate backend;
// the default remains "ximage".
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (Source, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}

	src := &gotextSource{face: face}
	src.bounds = src.computeBounds()
	return src, nil
}

// gotextSource implements Source on top of a go-text/typesetting face.
//
// go-text does not expose the head-table bounding box, so the global
// box is derived once at parse time as the union of outline control
// points across every glyph reachable from the cmap. For quadratic
// TrueType outlines this is the control box, a superset of the tight
// box with identical extremes on the on-curve points.
type gotextSource struct {
	face   *gtfont.Face
	bounds Box
}

// GlyphIndex implements Source.GlyphIndex.
func (s *gotextSource) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := s.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// Glyph implements Source.Glyph.
func (s *gotextSource) Glyph(gid GlyphID) (*Glyph, error) {
	g := &Glyph{Advance: s.face.HorizontalAdvance(gtfont.GID(gid))}

	outline, ok := s.face.GlyphData(gtfont.GID(gid)).(gtfont.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		// Bitmap-only or empty glyph: no drawable outline.
		return g, nil
	}

	g.Segments = closeContours(convertGotextSegments(outline.Segments))
	return g, nil
}

// Bounds implements Source.Bounds.
func (s *gotextSource) Bounds() Box {
	return s.bounds
}

// computeBounds unions the outline points of every cmap-mapped glyph.
// go-text glyph coordinates are already y-up font units.
func (s *gotextSource) computeBounds() Box {
	var (
		minX, minY float32
		maxX, maxY float32
		seen       = make(map[gtfont.GID]struct{})
		any        bool
	)

	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		gid, ok := s.face.NominalGlyph(r)
		if !ok || gid == 0 {
			continue
		}
		if _, dup := seen[gid]; dup {
			continue
		}
		seen[gid] = struct{}{}

		outline, ok := s.face.GlyphData(gid).(gtfont.GlyphOutline)
		if !ok {
			continue
		}
		for _, seg := range convertGotextSegments(outline.Segments) {
			for _, pt := range segmentPoints(seg) {
				if !any {
					minX, maxX = pt.X, pt.X
					minY, maxY = pt.Y, pt.Y
					any = true
					continue
				}
				minX = min(minX, pt.X)
				minY = min(minY, pt.Y)
				maxX = max(maxX, pt.X)
				maxY = max(maxY, pt.Y)
			}
		}
	}

	if !any {
		return Box{}
	}
	return Box{
		Min:  Point{X: minX, Y: minY},
		Size: Point{X: maxX - minX, Y: maxY - minY},
	}
}

// convertGotextSegments maps go-text segments to the fontsrc event
// model (without close synthesis).
func convertGotextSegments(segments []opentype.Segment) []Segment {
	segs := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = gotextPoint(seg.Args[0])
		case opentype.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = gotextPoint(seg.Args[0])
		case opentype.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = gotextPoint(seg.Args[0])
			out.Args[1] = gotextPoint(seg.Args[1])
		case opentype.SegmentOpCubeTo:
			out.Op = SegmentOpCubeTo
			out.Args[0] = gotextPoint(seg.Args[0])
			out.Args[1] = gotextPoint(seg.Args[1])
			out.Args[2] = gotextPoint(seg.Args[2])
		}
		segs = append(segs, out)
	}
	return segs
}

// segmentPoints returns the points a segment actually uses.
func segmentPoints(seg Segment) []Point {
	switch seg.Op {
	case SegmentOpMoveTo, SegmentOpLineTo:
		return seg.Args[:1]
	case SegmentOpQuadTo:
		return seg.Args[:2]
	case SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return nil
	}
}

// gotextPoint converts a go-text segment point.
func gotextPoint(p opentype.SegmentPoint) Point {
	return Point{X: p.X, Y: p.Y}
}
