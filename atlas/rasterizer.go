package atlas

import "image"

// Metrics describes a rasterized glyph at a given size, in pixels.
type Metrics struct {
	// AdvanceX and AdvanceY are the pen displacement after the glyph.
	AdvanceX, AdvanceY float64

	// BearingX and BearingY are the offset from the pen position to the
	// bitmap's bottom-left corner, y growing up.
	BearingX, BearingY float64

	// Width and Height are the bitmap dimensions.
	Width, Height int
}

// Rasterizer turns characters into coverage bitmaps.
// Implementations must be deterministic for a fixed (rune, size).
type Rasterizer interface {
	// Rasterize returns the glyph metrics and a Width×Height coverage bitmap.
	// The bitmap may be nil when the glyph has no visible pixels.
	Rasterize(r rune, sizePx float64) (Metrics, *image.Alpha, error)

	// Metrics returns the glyph metrics without rasterizing.
	Metrics(r rune, sizePx float64) (Metrics, error)
}
