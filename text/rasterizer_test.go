package text

import (
	"errors"
	"testing"

	"github.com/gogpu/ggui/atlas"
	"github.com/gogpu/ggui/layout"
)

func newTestRasterizer(t *testing.T) *OpenTypeRasterizer {
	t.Helper()
	r, err := NewDefaultRasterizer()
	if err != nil {
		t.Fatalf("NewDefaultRasterizer: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewOpenTypeRasterizerErrors(t *testing.T) {
	if _, err := NewOpenTypeRasterizer(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewOpenTypeRasterizer(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewOpenTypeRasterizer([]byte("not a font")); err == nil {
		t.Error("NewOpenTypeRasterizer(garbage) succeeded")
	}
}

func TestRasterizeVisibleGlyph(t *testing.T) {
	r := newTestRasterizer(t)

	m, bitmap, err := r.Rasterize('A', 32)
	if err != nil {
		t.Fatalf("Rasterize('A'): %v", err)
	}
	if bitmap == nil {
		t.Fatal("no bitmap for 'A'")
	}
	if b := bitmap.Bounds(); b.Dx() != m.Width || b.Dy() != m.Height {
		t.Errorf("bitmap %v does not match metrics %dx%d", b, m.Width, m.Height)
	}
	if m.AdvanceX <= 0 {
		t.Errorf("AdvanceX = %v", m.AdvanceX)
	}
	// 'A' sits on the baseline.
	if m.BearingY < -1 || m.BearingY > 1 {
		t.Errorf("BearingY = %v, want about 0", m.BearingY)
	}

	inked := 0
	for _, a := range bitmap.Pix {
		if a > 0x80 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("bitmap is blank")
	}
}

func TestRasterizeDescender(t *testing.T) {
	r := newTestRasterizer(t)
	m, err := r.Metrics('g', 32)
	if err != nil {
		t.Fatal(err)
	}
	if m.BearingY >= 0 {
		t.Errorf("'g' BearingY = %v, want below the baseline", m.BearingY)
	}
}

func TestMetricsWhitespace(t *testing.T) {
	r := newTestRasterizer(t)

	space, err := r.Metrics(' ', 24)
	if err != nil {
		t.Fatal(err)
	}
	if space.AdvanceX <= 0 || space.Width != 0 || space.Height != 0 {
		t.Errorf("space metrics = %+v", space)
	}

	tab, err := r.Metrics('\t', 24)
	if err != nil {
		t.Fatalf("Metrics('\\t'): %v", err)
	}
	if tab.AdvanceX <= 0 {
		t.Errorf("tab advance = %v", tab.AdvanceX)
	}
}

func TestRasterizeMissingGlyph(t *testing.T) {
	r := newTestRasterizer(t)
	if r.Covers('\U0001F600') {
		t.Skip("font unexpectedly covers emoji")
	}
	if _, _, err := r.Rasterize('\U0001F600', 24); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Rasterize(emoji) = %v, want ErrGlyphNotFound", err)
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	r := newTestRasterizer(t)
	for _, size := range []float64{0, -4} {
		if _, _, err := r.Rasterize('a', size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Rasterize(size %v) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestLineHeight(t *testing.T) {
	r := newTestRasterizer(t)
	h, err := r.LineHeight(20)
	if err != nil {
		t.Fatal(err)
	}
	asc, _ := r.Ascent(20)
	if h < 20 || asc <= 0 || asc >= h {
		t.Errorf("LineHeight = %v, Ascent = %v", h, asc)
	}
}

func TestFlowWithAtlasCache(t *testing.T) {
	r := newTestRasterizer(t)
	tex := atlas.NewImageTexture(256, 256)
	c, err := atlas.NewCache(atlas.Config{Width: 256, Height: 256, Padding: 1, FontSize: 24}, r, tex)
	if err != nil {
		t.Fatal(err)
	}
	lh, _ := r.LineHeight(24)
	f := NewFlow(c, lh, NewBatch())

	f.LayoutLine("Hello, world", layout.Pt(0, 100), layout.White, nil)

	if n := len(f.Batch().Glyphs); n != 11 {
		t.Errorf("emitted %d quads, want 11", n)
	}
	if c.Len() != 9 {
		t.Errorf("cache holds %d glyphs, want 9 distinct runes", c.Len())
	}
	if tex.Uploads() != 8 {
		t.Errorf("uploaded %d bitmaps, want 8 (space has none)", tex.Uploads())
	}
	if f.Stats().Skipped != 0 {
		t.Errorf("skipped %d glyphs", f.Stats().Skipped)
	}
}
