package text

import "github.com/gogpu/ggui/layout"

// Color is a vertex color, straight alpha.
type Color = layout.Color

// GlyphQuad is a textured quad sampling the glyph atlas.
type GlyphQuad struct {
	// Rune is the character the quad draws, zero for non-glyph images.
	Rune rune

	// Pos is the quad in layout space.
	Pos layout.Bbox

	// U0, V0 is the texture coordinate of the quad's top-left corner and
	// U1, V1 of its bottom-right corner, normalized to the atlas size.
	U0, V0, U1, V1 float32

	Color Color
}

// RectQuad is an untextured, solid-colored quad.
type RectQuad struct {
	Box   layout.Bbox
	Color Color
}

// Batch collects the geometry of one frame.
// Renderers draw Rects first, then Glyphs.
type Batch struct {
	Glyphs []GlyphQuad
	Rects  []RectQuad
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Glyphs = b.Glyphs[:0]
	b.Rects = b.Rects[:0]
}

// AddGlyph appends a glyph quad.
func (b *Batch) AddGlyph(q GlyphQuad) {
	b.Glyphs = append(b.Glyphs, q)
}

// AddRect appends a solid quad.
func (b *Batch) AddRect(box layout.Bbox, c Color) {
	b.Rects = append(b.Rects, RectQuad{Box: box, Color: c})
}

// Grow makes room for n more glyph quads.
func (b *Batch) Grow(n int) {
	if n <= 0 {
		return
	}
	if free := cap(b.Glyphs) - len(b.Glyphs); free < n {
		grown := make([]GlyphQuad, len(b.Glyphs), len(b.Glyphs)+n)
		copy(grown, b.Glyphs)
		b.Glyphs = grown
	}
}

// Len returns the total number of quads.
func (b *Batch) Len() int {
	return len(b.Glyphs) + len(b.Rects)
}
