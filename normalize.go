package glyphatlas

import "github.com/gogpu/glyphatlas/fontsrc"

// Normalize rescales the outline in place against the font-wide
// bounding box and converts it to the renderer's coordinate and
// winding conventions. Three steps, in fixed order:
//
//  1. Map every control point into the unit square: subtract the box
//     min, divide by the box size.
//  2. Flip the y axis (y' = 1-y): font space is y-up, the renderer is
//     y-down.
//  3. Swap P0 and P2 in every curve: the flip reverses traversal
//     direction, the swap restores consistent winding for the fill
//     rule.
//
// The box is the global one shared by all glyphs, never a per-glyph
// box: that keeps relative glyph scale intact across the whole font.
func (o Outline) Normalize(box fontsrc.Box) {
	for i := range o {
		c := &o[i]
		c.P0 = flipPoint(scalePoint(c.P0, box))
		c.P1 = flipPoint(scalePoint(c.P1, box))
		c.P2 = flipPoint(scalePoint(c.P2, box))
		c.P0, c.P2 = c.P2, c.P0
	}
}

// scalePoint maps p into the unit square of box.
func scalePoint(p fontsrc.Point, box fontsrc.Box) fontsrc.Point {
	return fontsrc.Point{
		X: (p.X - box.Min.X) / box.Size.X,
		Y: (p.Y - box.Min.Y) / box.Size.Y,
	}
}

// flipPoint converts a unit-square point from y-up to y-down.
func flipPoint(p fontsrc.Point) fontsrc.Point {
	return fontsrc.Point{X: p.X, Y: 1 - p.Y}
}
