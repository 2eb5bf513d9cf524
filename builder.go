package glyphatlas

import (
	"fmt"

	"github.com/gogpu/glyphatlas/fontsrc"
)

// Builder turns a glyph's path events into an Outline: a closed chain
// of quadratic curves per contour, with straight lines stored as
// degenerate quadratics.
//
// While a contour is open the builder keeps exactly one pending stub
// curve: a curve whose start point is set but whose control and end
// points are not. Each LineTo/QuadTo completes the stub and pushes a
// new one starting at the segment's end point; Close pops the final
// stub (it holds the contour's unconsumed start anchor). The stub is
// tracked by an explicit index rather than "the last element" so the
// invariant is checkable.
//
// Errors are sticky: after the first failure all further events are
// ignored and Outline returns the error.
type Builder struct {
	curves  []Curve
	pending int // index of the open contour's stub curve, -1 if none
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{pending: -1}
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p fontsrc.Point) {
	if b.err != nil {
		return
	}
	if b.pending != -1 {
		b.err = fmt.Errorf("%w: MoveTo while a contour is open", ErrUnclosedContour)
		return
	}
	b.curves = append(b.curves, Curve{P0: p})
	b.pending = len(b.curves) - 1
}

// LineTo draws a straight line to p, encoded as a degenerate quadratic
// whose control point is the endpoint midpoint.
func (b *Builder) LineTo(p fontsrc.Point) {
	if b.err != nil {
		return
	}
	if b.pending == -1 {
		b.err = fmt.Errorf("%w: LineTo", ErrStraySegment)
		return
	}
	cur := &b.curves[b.pending]
	cur.P1 = midpoint(cur.P0, p)
	cur.P2 = p
	cur.Flags |= CurveFlagLine
	b.curves = append(b.curves, Curve{P0: p})
	b.pending = len(b.curves) - 1
}

// QuadTo draws a quadratic bezier with control point ctrl ending at p.
func (b *Builder) QuadTo(ctrl, p fontsrc.Point) {
	if b.err != nil {
		return
	}
	if b.pending == -1 {
		b.err = fmt.Errorf("%w: QuadTo", ErrStraySegment)
		return
	}
	cur := &b.curves[b.pending]
	cur.P1 = ctrl
	cur.P2 = p
	b.curves = append(b.curves, Curve{P0: p})
	b.pending = len(b.curves) - 1
}

// CubeTo always fails: the atlas format is quadratic-only.
func (b *Builder) CubeTo(c1, c2, p fontsrc.Point) {
	if b.err != nil {
		return
	}
	b.err = ErrCubicCurve
}

// Close ends the current contour. The pending curve must still be a
// stub (it carries the contour's start anchor and nothing else) and
// is removed. Anything else means the event stream was malformed.
func (b *Builder) Close() {
	if b.err != nil {
		return
	}
	if b.pending == -1 {
		b.err = fmt.Errorf("%w: Close", ErrStraySegment)
		return
	}
	if !b.curves[b.pending].isStub() {
		b.err = ErrOpenContour
		return
	}
	b.curves = b.curves[:b.pending]
	b.pending = -1
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error {
	return b.err
}

// Outline returns the built outline. It fails if any event failed or
// if a contour is still open.
func (b *Builder) Outline() (Outline, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.pending != -1 {
		return nil, fmt.Errorf("%w: outline ended mid-contour", ErrUnclosedContour)
	}
	return Outline(b.curves), nil
}

// BuildOutline runs a glyph's segment events through a Builder.
func BuildOutline(segs []fontsrc.Segment) (Outline, error) {
	b := NewBuilder()
	for _, seg := range segs {
		switch seg.Op {
		case fontsrc.SegmentOpMoveTo:
			b.MoveTo(seg.Args[0])
		case fontsrc.SegmentOpLineTo:
			b.LineTo(seg.Args[0])
		case fontsrc.SegmentOpQuadTo:
			b.QuadTo(seg.Args[0], seg.Args[1])
		case fontsrc.SegmentOpCubeTo:
			b.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		case fontsrc.SegmentOpClose:
			b.Close()
		}
	}
	return b.Outline()
}
