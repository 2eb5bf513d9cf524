// Package glyphatlas bakes a font's glyph outlines into fixed-layout
// binary buffers for a GPU vector glyph renderer.
//
// # Overview
//
// The renderer consumes three flat buffers: a curve buffer holding
// every glyph's outline as quadratic beziers, an info buffer mapping
// each codepoint to its [start,end) curve range, and a metrics buffer
// holding each codepoint's advance width. glyphatlas produces those
// buffers from a font file:
//
//	src, err := fontsrc.New(fontData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	atlas, err := glyphatlas.Build(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = glyphatlas.WriteCurves(f, atlas.Curves)
//
// # Curve representation
//
// Every outline is a closed chain of quadratic curves. Straight lines
// are encoded as degenerate quadratics whose control point is the
// endpoint midpoint, so the shader evaluates a single curve type.
// Cubic outlines are not supported: a font that needs them is rejected,
// not approximated.
//
// # Coordinate space
//
// All curve coordinates are normalized to the unit square against the
// font-wide bounding box (not each glyph's own box), preserving
// relative glyph scale across the whole font. The y axis is flipped to
// the renderer's y-down convention and each curve's endpoints are
// swapped to keep winding consistent for the fill rule.
//
// # Table density
//
// The info and metrics buffers contain one record for every codepoint
// from U+0000 through U+10FFFF, surrogates included, so the renderer
// indexes them directly by codepoint with no lookup structure.
// Alphanumeric codepoints missing from the font are patched with the
// replacement character's (U+FFFD) records; everything else missing
// stays zeroed and renders blank.
package glyphatlas
