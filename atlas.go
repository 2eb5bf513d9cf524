package glyphatlas

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/glyphatlas/fontsrc"
)

// Codepoint domain constants.
//
// The info and metrics tables are dense over the whole domain,
// surrogates included, so the renderer can index them directly by
// codepoint value.
const (
	// MaxCodepoint is the last codepoint in the tables (U+10FFFF).
	MaxCodepoint = utf8.MaxRune

	// NumCodepoints is the number of records in the info and metrics
	// tables.
	NumCodepoints = int(MaxCodepoint) + 1

	// ReplacementCodepoint is the fallback glyph (U+FFFD) substituted
	// for alphanumeric codepoints the font does not cover.
	ReplacementCodepoint = utf8.RuneError
)

// Info locates one codepoint's curves in the curve buffer as a
// half-open [Start,End) range. [0,0) means "no drawable outline".
type Info struct {
	Start, End uint32
}

// Metrics holds one codepoint's horizontal advance, normalized by the
// global bounding-box width.
type Metrics struct {
	Advance float32
}

// Atlas is the baked result: one curve buffer shared by all glyphs and
// dense per-codepoint info and metrics tables.
// An Atlas is write-once; nothing mutates it after Build returns.
type Atlas struct {
	Curves  []Curve
	Infos   []Info    // NumCodepoints records, indexed by codepoint
	Metrics []Metrics // NumCodepoints records, indexed by codepoint
}

// glyphData is the transient per-codepoint record of the analysis
// pass. It is consumed when flattened into the Atlas and never
// persisted on its own.
type glyphData struct {
	outline Outline // normalized; empty for shapeless glyphs
	metrics Metrics
}

// Build bakes every glyph the source covers into an Atlas.
//
// The bake is strictly ordered and single-threaded: analyze each
// covered codepoint (outline build + normalization), assemble the
// dense tables in codepoint-ascending order while marking fallback
// candidates, then patch every fallback-eligible record with the
// replacement character's finished record. The replacement glyph is
// built like any other, so fallback is a verbatim copy and never
// recursive. If the replacement character itself is missing, eligible
// codepoints receive its zeroed record; that degenerate outcome is
// accepted, not corrected.
func Build(src fontsrc.Source) (*Atlas, error) {
	box := src.Bounds()
	if box.Size.X <= 0 || box.Size.Y <= 0 {
		return nil, ErrInvalidBounds
	}
	log := Logger()

	// Pass 1: per-codepoint analysis.
	glyphs := make(map[rune]glyphData)
	for r := rune(0); r <= MaxCodepoint; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		gid, ok := src.GlyphIndex(r)
		if !ok {
			continue
		}
		g, err := src.Glyph(gid)
		if err != nil {
			return nil, fmt.Errorf("glyphatlas: codepoint %U: %w", r, err)
		}
		outline, err := BuildOutline(g.Segments)
		if err != nil {
			return nil, fmt.Errorf("glyphatlas: codepoint %U: %w", r, err)
		}
		outline.Normalize(box)
		glyphs[r] = glyphData{
			outline: outline,
			metrics: Metrics{Advance: g.Advance / box.Size.X},
		}
	}
	log.Debug("glyphatlas: analysis pass done", "covered", len(glyphs))

	// Pass 2: dense table assembly in codepoint-ascending order.
	a := &Atlas{
		Infos:   make([]Info, NumCodepoints),
		Metrics: make([]Metrics, NumCodepoints),
	}
	fallback := make([]bool, NumCodepoints)
	for r := rune(0); r <= MaxCodepoint; r++ {
		if !utf8.ValidRune(r) {
			// Surrogates: zeroed records, never fallback-patched.
			continue
		}
		data, covered := glyphs[r]
		if !covered {
			// Letters and digits get the visible placeholder;
			// missing punctuation and symbols render blank.
			fallback[r] = unicode.IsLetter(r) || unicode.IsNumber(r)
			continue
		}
		if n := len(data.outline); n > 0 {
			start := uint64(len(a.Curves))
			end := start + uint64(n)
			if end > math.MaxUint32 {
				return nil, ErrAtlasOverflow
			}
			a.Infos[r] = Info{Start: uint32(start), End: uint32(end)}
			a.Curves = append(a.Curves, data.outline...)
		}
		a.Metrics[r] = data.metrics
	}

	// Pass 3: fallback patch, resolved only now so the replacement
	// record is final.
	patched := 0
	for r, eligible := range fallback {
		if eligible {
			a.Infos[r] = a.Infos[ReplacementCodepoint]
			a.Metrics[r] = a.Metrics[ReplacementCodepoint]
			patched++
		}
	}
	log.Debug("glyphatlas: assembly done",
		"curves", len(a.Curves),
		"curveBytes", len(a.Curves)*CurveRecordSize,
		"infoBytes", NumCodepoints*InfoRecordSize,
		"metricsBytes", NumCodepoints*MetricsRecordSize,
		"fallbackPatched", patched)
	return a, nil
}

// Validate checks the structural invariants of a built atlas: dense
// table lengths and info ranges that address the curve buffer.
func (a *Atlas) Validate() error {
	if len(a.Infos) != NumCodepoints {
		return fmt.Errorf("glyphatlas: info table has %d records, want %d", len(a.Infos), NumCodepoints)
	}
	if len(a.Metrics) != NumCodepoints {
		return fmt.Errorf("glyphatlas: metrics table has %d records, want %d", len(a.Metrics), NumCodepoints)
	}
	n := uint64(len(a.Curves))
	for r, info := range a.Infos {
		if info.Start > info.End || uint64(info.End) > n {
			return fmt.Errorf("glyphatlas: codepoint %U has invalid curve range [%d,%d)", r, info.Start, info.End)
		}
	}
	return nil
}
