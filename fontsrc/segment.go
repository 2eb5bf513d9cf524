package fontsrc

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic bezier curve.
	SegmentOpCubeTo

	// SegmentOpClose closes the current contour back to its start.
	SegmentOpClose
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	case SegmentOpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Segment is one path event of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op SegmentOp

	// Args contains the control and end points for this segment.
	//   - MoveTo: Args[0] is the target point
	//   - LineTo: Args[0] is the target point
	//   - QuadTo: Args[0] is control, Args[1] is target
	//   - CubeTo: Args[0], Args[1] are controls, Args[2] is target
	//   - Close:  no arguments
	Args [3]Point
}

// MoveTo returns a MoveTo segment to p.
func MoveTo(p Point) Segment {
	return Segment{Op: SegmentOpMoveTo, Args: [3]Point{p}}
}

// LineTo returns a LineTo segment to p.
func LineTo(p Point) Segment {
	return Segment{Op: SegmentOpLineTo, Args: [3]Point{p}}
}

// QuadTo returns a QuadTo segment with control point ctrl and end
// point end.
func QuadTo(ctrl, end Point) Segment {
	return Segment{Op: SegmentOpQuadTo, Args: [3]Point{ctrl, end}}
}

// CubeTo returns a CubeTo segment with control points c1, c2 and end
// point end.
func CubeTo(c1, c2, end Point) Segment {
	return Segment{Op: SegmentOpCubeTo, Args: [3]Point{c1, c2, end}}
}

// Close returns a Close segment.
func Close() Segment {
	return Segment{Op: SegmentOpClose}
}

// closeContours rewrites a segment list that marks contour starts with
// MoveTo (the convention of both sfnt and go-text glyph data) into one
// with explicit Close events: one before every MoveTo after the first,
// and one at the end.
func closeContours(segs []Segment) []Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]Segment, 0, len(segs)+4)
	for i, seg := range segs {
		if seg.Op == SegmentOpMoveTo && i > 0 {
			out = append(out, Close())
		}
		out = append(out, seg)
	}
	return append(out, Close())
}
