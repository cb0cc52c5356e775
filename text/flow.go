package text

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggui/atlas"
	"github.com/gogpu/ggui/layout"
)

// Glyphs is the glyph source a Flow draws from. *atlas.Cache implements it.
type Glyphs interface {
	Get(r rune) (atlas.Glyph, error)
	TexCoords(g atlas.Glyph) (u0, v0, u1, v1 float32, ok bool)

	// Advance returns the advance of r without placing it in the atlas.
	Advance(r rune) (float64, error)
}

// FlowStats counts what a Flow did since its last ResetStats.
type FlowStats struct {
	// Lines is the number of lines started, wrapped lines included.
	Lines int
	// Glyphs is the number of quads emitted.
	Glyphs int
	// Skipped counts characters dropped because their glyph failed.
	Skipped int
	// Truncated counts runs cut off at the bottom of their wrap box.
	Truncated int
}

// Flow lays out runs of text and appends their glyph quads to a batch.
//
// Flow is NOT safe for concurrent use.
type Flow struct {
	glyphs     Glyphs
	lineHeight float64
	batch      *Batch
	stats      FlowStats
}

// NewFlow creates a flow engine drawing glyphs into batch.
// lineHeight is the vertical distance between wrapped lines.
func NewFlow(glyphs Glyphs, lineHeight float64, batch *Batch) *Flow {
	return &Flow{
		glyphs:     glyphs,
		lineHeight: lineHeight,
		batch:      batch,
	}
}

// LineHeight returns the distance between lines.
func (f *Flow) LineHeight() float64 {
	return f.lineHeight
}

// Batch returns the batch quads are appended to.
func (f *Flow) Batch() *Batch {
	return f.batch
}

// Stats returns the counters accumulated since the last ResetStats.
func (f *Flow) Stats() FlowStats {
	return f.stats
}

// ResetStats zeroes the counters.
func (f *Flow) ResetStats() {
	f.stats = FlowStats{}
}

// LinesNeeded estimates how many lines a run of the given total advance
// occupies in a box of the given width. The estimate ignores where breaks
// actually fall.
func LinesNeeded(total, width float64) int {
	if total <= 0 {
		return 1
	}
	if width <= 0 {
		return math.MaxInt32
	}
	return int(math.Ceil(total / width))
}

// Measure returns the advance width of s laid out on a single line.
// Characters whose glyph cannot be produced contribute nothing. Measuring
// does not touch the atlas.
func (f *Flow) Measure(s string) float64 {
	total, _ := f.measure(norm.NFC.String(s))
	return total
}

// measure sums the advances of s and reports the runes that failed, so the
// place pass can skip them without asking for them again.
func (f *Flow) measure(s string) (float64, map[rune]error) {
	var failed map[rune]error
	total := 0.0
	for _, r := range s {
		if _, seen := failed[r]; seen {
			continue
		}
		adv, err := f.glyphs.Advance(r)
		if err != nil {
			if failed == nil {
				failed = make(map[rune]error)
			}
			failed[r] = err
			continue
		}
		total += adv
	}
	return total, failed
}

// LayoutLine draws s starting at origin and returns the height it consumed.
//
// Without a wrap box the pen runs left to right from origin and the result
// is one line height. With a wrap box the pen starts at (wrap.MinX,
// origin.Y). A character whose advance would carry the pen past wrap.MaxX
// moves to a new line one line height lower, unless the pen is already at
// the start of a line. Once the pen leaves the box vertically the rest of s
// is dropped and only the lines started so far count.
//
// An empty s draws nothing and consumes no height.
func (f *Flow) LayoutLine(s string, origin layout.Point, color Color, wrap *layout.Bbox) float64 {
	s = norm.NFC.String(s)
	if s == "" {
		return 0
	}

	if wrap == nil {
		f.batch.Grow(utf8.RuneCountInString(s))
		f.stats.Lines++
		pen := origin
		for _, r := range s {
			g, ok := f.glyph(r)
			if !ok {
				continue
			}
			f.emit(g, pen, color)
			pen.X += g.AdvanceX
		}
		return f.lineHeight
	}

	total, failed := f.measure(s)
	slogger().Debug("text: wrapping line",
		"runes", utf8.RuneCountInString(s), "lines_needed", LinesNeeded(total, wrap.Width()))

	pen := layout.Pt(wrap.MinX, origin.Y)
	if outside(pen, wrap) {
		f.stats.Truncated++
		return 0
	}
	f.batch.Grow(utf8.RuneCountInString(s))

	lines := 1
	f.stats.Lines++
	for _, r := range s {
		if err, bad := failed[r]; bad {
			f.skip(r, err)
			continue
		}
		g, ok := f.glyph(r)
		if !ok {
			continue
		}
		if pen.X+g.AdvanceX > wrap.MaxX && pen.X > wrap.MinX {
			pen.X = wrap.MinX
			pen.Y -= f.lineHeight
			if outside(pen, wrap) {
				f.stats.Truncated++
				break
			}
			lines++
			f.stats.Lines++
		}
		f.emit(g, pen, color)
		pen.X += g.AdvanceX
	}
	return float64(lines) * f.lineHeight
}

// AddMultiline lays out each line below the previous one, starting at origin,
// and returns the total height consumed. Wrapped lines push the following
// ones down.
func (f *Flow) AddMultiline(lines []string, origin layout.Point, color Color, wrap *layout.Bbox) float64 {
	total := 0.0
	pen := origin
	for _, line := range lines {
		h := f.LayoutLine(line, pen, color, wrap)
		total += h
		pen.Y -= h
	}
	return total
}

// glyph fetches r, logging and counting failures.
func (f *Flow) glyph(r rune) (atlas.Glyph, bool) {
	g, err := f.glyphs.Get(r)
	if err != nil {
		f.skip(r, err)
		return atlas.Glyph{}, false
	}
	return g, true
}

func (f *Flow) skip(r rune, err error) {
	f.stats.Skipped++
	slogger().Debug("text: skipping glyph", "rune", string(r), "err", err)
}

// emit appends the quad for g with its pen position at pen.
func (f *Flow) emit(g atlas.Glyph, pen layout.Point, color Color) {
	u0, v0, u1, v1, ok := f.glyphs.TexCoords(g)
	if !ok {
		return
	}
	x := pen.X + g.BearingX
	y := pen.Y + g.BearingY
	f.batch.AddGlyph(GlyphQuad{
		Rune:  g.Rune,
		Pos:   layout.Bbox{MinX: x, MinY: y, MaxX: x + float64(g.Width), MaxY: y + float64(g.Height)},
		U0:    u0,
		V0:    v0,
		U1:    u1,
		V1:    v1,
		Color: color,
	})
	f.stats.Glyphs++
}

func outside(p layout.Point, box *layout.Bbox) bool {
	return p.Y < box.MinY || p.Y > box.MaxY
}
