package ggui

import (
	"fmt"

	"github.com/gogpu/ggui/atlas"
	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/text"
)

// Renderer consumes the geometry of one frame.
type Renderer interface {
	Render(b *text.Batch) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(b *text.Batch) error

// Render implements Renderer.
func (f RendererFunc) Render(b *text.Batch) error {
	return f(b)
}

// FrameStats describes the last drawn frame.
type FrameStats struct {
	GlyphQuads int
	RectQuads  int

	// Evictions is the number of glyphs evicted from the atlas while laying
	// out this frame.
	Evictions uint64

	// Skipped counts characters that could not be drawn.
	Skipped int

	// Truncated counts text runs cut off by their wrap box.
	Truncated int
}

// lineHeighter is implemented by rasterizers that know their font's line
// spacing, such as *text.OpenTypeRasterizer.
type lineHeighter interface {
	LineHeight(sizePx float64) (float64, error)
}

// Frame lays out a UI tree and hands the resulting quads to a Renderer.
// The glyph cache lives as long as the Frame; the batch is rebuilt on every
// Draw.
//
// Frame is NOT safe for concurrent use.
type Frame struct {
	config   Config
	cache    *atlas.Cache
	batch    *text.Batch
	flow     *text.Flow
	renderer Renderer
	stats    FrameStats
}

// NewFrame creates a frame that rasterizes glyphs with raster, stores them in
// tex, and draws through r.
func NewFrame(config Config, raster atlas.Rasterizer, tex atlas.Texture, r Renderer) (*Frame, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilRenderer
	}

	cache, err := atlas.NewCache(config.Atlas, raster, tex)
	if err != nil {
		return nil, err
	}

	lh := config.LineHeight
	if lh == 0 {
		lh = config.Atlas.FontSize
		if l, ok := raster.(lineHeighter); ok {
			h, err := l.LineHeight(config.Atlas.FontSize)
			if err != nil {
				return nil, fmt.Errorf("ggui: line height: %w", err)
			}
			lh = h
		}
	}

	batch := text.NewBatch()
	return &Frame{
		config:   config,
		cache:    cache,
		batch:    batch,
		flow:     text.NewFlow(cache, lh, batch),
		renderer: r,
	}, nil
}

// Draw lays out root inside viewport and renders the result.
//
// The order is fixed: the batch is cleared, the tree is laid out (which may
// rasterize and evict glyphs), and the finished batch is passed to the
// renderer.
func (f *Frame) Draw(root *layout.Node, viewport layout.Bbox) error {
	evictionsBefore := f.cache.Stats().Evictions
	f.batch.Reset()
	f.flow.ResetStats()

	layout.Layout(root, viewport, f.emit)

	fs := f.flow.Stats()
	f.stats = FrameStats{
		GlyphQuads: len(f.batch.Glyphs),
		RectQuads:  len(f.batch.Rects),
		Evictions:  f.cache.Stats().Evictions - evictionsBefore,
		Skipped:    fs.Skipped,
		Truncated:  fs.Truncated,
	}

	if err := f.renderer.Render(f.batch); err != nil {
		return fmt.Errorf("ggui: render: %w", err)
	}
	return nil
}

// emit turns one placed leaf into quads.
func (f *Frame) emit(c layout.Content, box layout.Bbox) {
	switch c := c.(type) {
	case *layout.Text:
		if c.Background != nil {
			f.batch.AddRect(box, *c.Background)
		}
		origin := layout.Pt(box.MinX, box.MaxY-f.flow.LineHeight())
		var wrap *layout.Bbox
		if c.Wrap {
			wrap = &box
		}
		f.flow.AddMultiline(c.Lines, origin, c.TextColor, wrap)

	case *layout.SolidRect:
		f.batch.AddRect(box, c.Color)

	case *layout.Image:
		f.batch.AddGlyph(text.GlyphQuad{
			Pos:   box,
			U0:    0,
			V0:    0,
			U1:    1,
			V1:    1,
			Color: layout.White,
		})

	default:
		Logger().Warn("ggui: unknown content", "type", fmt.Sprintf("%T", c))
	}
}

// Stats returns statistics for the last Draw.
func (f *Frame) Stats() FrameStats {
	return f.stats
}

// Cache returns the glyph cache.
func (f *Frame) Cache() *atlas.Cache {
	return f.cache
}

// Batch returns the geometry of the last Draw.
func (f *Frame) Batch() *text.Batch {
	return f.batch
}

// LineHeight returns the distance between text lines.
func (f *Frame) LineHeight() float64 {
	return f.flow.LineHeight()
}

// Config returns the frame configuration.
func (f *Frame) Config() Config {
	return f.config
}
