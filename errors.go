package glyphatlas

import "errors"

// Sentinel errors for the glyphatlas package.
var (
	// ErrCubicCurve is returned when a glyph outline contains a cubic
	// bezier. The atlas format is quadratic-only.
	ErrCubicCurve = errors.New("glyphatlas: cubic curves are not supported")

	// ErrStraySegment is returned when a line or curve segment arrives
	// without a preceding MoveTo.
	ErrStraySegment = errors.New("glyphatlas: segment outside an open contour")

	// ErrOpenContour is returned when a contour is closed while its
	// last curve is not a pending stub, which means the event stream
	// was malformed.
	ErrOpenContour = errors.New("glyphatlas: close with a completed curve pending")

	// ErrUnclosedContour is returned when an outline ends, or a new
	// contour starts, while the previous contour was never closed.
	ErrUnclosedContour = errors.New("glyphatlas: contour was not closed")

	// ErrAtlasOverflow is returned when the curve buffer grows past
	// what a 32-bit index range can address.
	ErrAtlasOverflow = errors.New("glyphatlas: curve buffer exceeds 32-bit index range")

	// ErrInvalidBounds is returned when the font reports a degenerate
	// global bounding box.
	ErrInvalidBounds = errors.New("glyphatlas: font bounding box has zero size")
)
