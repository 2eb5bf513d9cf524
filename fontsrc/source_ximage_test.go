package fontsrc

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// newTestSource parses the embedded Go Regular font with the default
// (ximage) backend.
func newTestSource(t *testing.T) Source {
	t.Helper()

	src, err := New(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse Go Regular: %v", err)
	}
	return src
}

func TestXimageSource_GlyphIndex(t *testing.T) {
	src := newTestSource(t)

	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"latin letter", 'A', true},
		{"digit", '7', true},
		{"replacement character", 0xFFFD, true},
		{"cjk ideograph not covered", 0x4E00, false},
		{"private use not covered", 0xE000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gid, ok := src.GlyphIndex(tt.r)
			if ok != tt.want {
				t.Fatalf("GlyphIndex(%U) ok = %v, want %v", tt.r, ok, tt.want)
			}
			if ok && gid == 0 {
				t.Errorf("GlyphIndex(%U) = 0 with ok = true", tt.r)
			}
		})
	}
}

func TestXimageSource_Glyph(t *testing.T) {
	src := newTestSource(t)

	gid, ok := src.GlyphIndex('A')
	if !ok {
		t.Fatal("font does not cover 'A'")
	}
	g, err := src.Glyph(gid)
	if err != nil {
		t.Fatalf("Glyph() error = %v", err)
	}
	if g.Advance <= 0 {
		t.Errorf("advance = %v, want > 0", g.Advance)
	}
	if len(g.Segments) == 0 {
		t.Fatal("'A' has no segments")
	}
	if g.Segments[0].Op != SegmentOpMoveTo {
		t.Errorf("first segment op = %v, want MoveTo", g.Segments[0].Op)
	}
	if last := g.Segments[len(g.Segments)-1]; last.Op != SegmentOpClose {
		t.Errorf("last segment op = %v, want Close", last.Op)
	}

	// Every contour must be bracketed: MoveTo only at a contour start,
	// Close only at a contour end.
	open := false
	for i, seg := range g.Segments {
		switch seg.Op {
		case SegmentOpMoveTo:
			if open {
				t.Fatalf("segment %d: MoveTo inside an open contour", i)
			}
			open = true
		case SegmentOpClose:
			if !open {
				t.Fatalf("segment %d: Close outside a contour", i)
			}
			open = false
		case SegmentOpCubeTo:
			t.Fatalf("segment %d: unexpected cubic in Go Regular", i)
		default:
			if !open {
				t.Fatalf("segment %d: %v outside a contour", i, seg.Op)
			}
		}
	}
	if open {
		t.Error("glyph ends with an unclosed contour")
	}
}

func TestXimageSource_ShapelessGlyph(t *testing.T) {
	src := newTestSource(t)

	gid, ok := src.GlyphIndex(' ')
	if !ok {
		t.Fatal("font does not cover space")
	}
	g, err := src.Glyph(gid)
	if err != nil {
		t.Fatalf("Glyph() error = %v", err)
	}
	if len(g.Segments) != 0 {
		t.Errorf("space has %d segments, want 0", len(g.Segments))
	}
	if g.Advance <= 0 {
		t.Errorf("space advance = %v, want > 0", g.Advance)
	}
}

func TestXimageSource_Bounds(t *testing.T) {
	src := newTestSource(t)

	box := src.Bounds()
	if box.Size.X <= 0 || box.Size.Y <= 0 {
		t.Fatalf("bounds size = %v, want positive", box.Size)
	}
	// Go Regular has descenders below the baseline, so the box bottom
	// is negative in y-up font units.
	if box.Min.Y >= 0 {
		t.Errorf("bounds min y = %v, want < 0", box.Min.Y)
	}

	// Glyph points must stay inside the global box: the head table
	// bbox is the union over all outline points.
	gid, _ := src.GlyphIndex('g')
	g, err := src.Glyph(gid)
	if err != nil {
		t.Fatalf("Glyph() error = %v", err)
	}
	const slack = 1.0 // font units
	for i, seg := range g.Segments {
		for _, p := range seg.Args[:segArity(seg.Op)] {
			if p.X < box.Min.X-slack || p.X > box.Min.X+box.Size.X+slack ||
				p.Y < box.Min.Y-slack || p.Y > box.Min.Y+box.Size.Y+slack {
				t.Fatalf("segment %d point %v outside global box %+v", i, p, box)
			}
		}
	}
}

// segArity returns how many of a segment's Args are meaningful.
func segArity(op SegmentOp) int {
	switch op {
	case SegmentOpMoveTo, SegmentOpLineTo:
		return 1
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	default:
		return 0
	}
}
