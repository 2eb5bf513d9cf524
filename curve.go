package glyphatlas

import "github.com/gogpu/glyphatlas/fontsrc"

// Curve flag bits.
const (
	// CurveFlagLine marks a degenerate quadratic encoding a straight
	// line: its control point is the midpoint of its endpoints.
	CurveFlagLine uint32 = 1 << 0
)

// Curve is one quadratic bezier of a glyph outline: start point P0,
// control point P1, end point P2.
//
// Curves serialize to a fixed 32-byte record (see CurveRecordSize);
// the in-memory struct carries no padding, the encoder supplies it.
type Curve struct {
	P0, P1, P2 fontsrc.Point
	Flags      uint32
}

// IsLine reports whether the curve encodes a straight line.
func (c Curve) IsLine() bool {
	return c.Flags&CurveFlagLine != 0
}

// isStub reports whether the curve is a pending stub: only its start
// point has been set. Stubs exist only while an outline is being
// built; a finished outline never contains one.
func (c Curve) isStub() bool {
	var zero fontsrc.Point
	return c.P1 == zero && c.P2 == zero
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b fontsrc.Point) fontsrc.Point {
	return fontsrc.Point{
		X: (a.X + b.X) * 0.5,
		Y: (a.Y + b.Y) * 0.5,
	}
}

// Outline is the ordered curve sequence of one glyph. The order is
// path-drawing order and therefore encodes winding.
type Outline []Curve
