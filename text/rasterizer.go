package text

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"unicode"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggui/atlas"
)

// OpenTypeRasterizer implements atlas.Rasterizer for TrueType and OpenType
// fonts. Faces are created lazily and kept per pixel size.
//
// OpenTypeRasterizer is NOT safe for concurrent use.
type OpenTypeRasterizer struct {
	font     *opentype.Font
	coverage *gotext.Font
	faces    map[float64]font.Face
}

// NewOpenTypeRasterizer parses font data.
func NewOpenTypeRasterizer(data []byte) (*OpenTypeRasterizer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// Rune coverage is answered from the go-text cmap.
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font tables: %w", err)
	}

	return &OpenTypeRasterizer{
		font:     f,
		coverage: face.Font,
		faces:    make(map[float64]font.Face),
	}, nil
}

// NewDefaultRasterizer returns a rasterizer for the Go Regular font.
func NewDefaultRasterizer() (*OpenTypeRasterizer, error) {
	return NewOpenTypeRasterizer(goregular.TTF)
}

// Covers reports whether the font maps r to a glyph.
func (o *OpenTypeRasterizer) Covers(r rune) bool {
	_, ok := o.coverage.NominalGlyph(r)
	return ok
}

func (o *OpenTypeRasterizer) face(sizePx float64) (font.Face, error) {
	if sizePx <= 0 || math.IsNaN(sizePx) || math.IsInf(sizePx, 0) {
		return nil, ErrInvalidSize
	}
	if f, ok := o.faces[sizePx]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(o.font, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	o.faces[sizePx] = f
	return f, nil
}

// resolve maps r to the rune actually drawn. Whitespace the font lacks
// (tabs, line separators) falls back to the space glyph.
func (o *OpenTypeRasterizer) resolve(r rune) (rune, error) {
	if o.Covers(r) {
		return r, nil
	}
	if unicode.IsSpace(r) {
		return ' ', nil
	}
	return 0, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
}

// glyphBox returns the integer pixel box of r relative to the dot, y down.
func glyphBox(face font.Face, r rune) (image.Rectangle, fixed.Int26_6, bool) {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return image.Rectangle{}, 0, false
	}
	box := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
	return box, advance, true
}

// Metrics implements atlas.Rasterizer.
func (o *OpenTypeRasterizer) Metrics(r rune, sizePx float64) (atlas.Metrics, error) {
	face, err := o.face(sizePx)
	if err != nil {
		return atlas.Metrics{}, err
	}
	drawn, err := o.resolve(r)
	if err != nil {
		return atlas.Metrics{}, err
	}
	box, advance, ok := glyphBox(face, drawn)
	if !ok {
		return atlas.Metrics{}, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}
	return metricsFromBox(box, advance), nil
}

// Rasterize implements atlas.Rasterizer.
func (o *OpenTypeRasterizer) Rasterize(r rune, sizePx float64) (atlas.Metrics, *image.Alpha, error) {
	face, err := o.face(sizePx)
	if err != nil {
		return atlas.Metrics{}, nil, err
	}
	drawn, err := o.resolve(r)
	if err != nil {
		return atlas.Metrics{}, nil, err
	}
	box, advance, ok := glyphBox(face, drawn)
	if !ok {
		return atlas.Metrics{}, nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	m := metricsFromBox(box, advance)
	if box.Empty() {
		return m, nil, nil
	}

	// Shift the dot so the glyph box lands at the bitmap origin.
	bitmap := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	d := font.Drawer{
		Dst:  bitmap,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-box.Min.X, -box.Min.Y),
	}
	d.DrawString(string(drawn))

	return m, bitmap, nil
}

// LineHeight returns the recommended baseline-to-baseline distance at sizePx.
func (o *OpenTypeRasterizer) LineHeight(sizePx float64) (float64, error) {
	face, err := o.face(sizePx)
	if err != nil {
		return 0, err
	}
	return fixedToFloat64(face.Metrics().Height), nil
}

// Ascent returns the distance from the baseline to the top of the tallest
// glyphs at sizePx.
func (o *OpenTypeRasterizer) Ascent(sizePx float64) (float64, error) {
	face, err := o.face(sizePx)
	if err != nil {
		return 0, err
	}
	return fixedToFloat64(face.Metrics().Ascent), nil
}

// Close releases the cached faces.
func (o *OpenTypeRasterizer) Close() error {
	for size, f := range o.faces {
		if err := f.Close(); err != nil {
			return err
		}
		delete(o.faces, size)
	}
	return nil
}

// metricsFromBox converts a y-down glyph box to y-up metrics.
func metricsFromBox(box image.Rectangle, advance fixed.Int26_6) atlas.Metrics {
	return atlas.Metrics{
		AdvanceX: fixedToFloat64(advance),
		BearingX: float64(box.Min.X),
		BearingY: float64(-box.Max.Y),
		Width:    box.Dx(),
		Height:   box.Dy(),
	}
}

// fixedToFloat64 converts a 26.6 fixed-point value to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

var _ atlas.Rasterizer = (*OpenTypeRasterizer)(nil)
