package atlas

import (
	"image"
	"unicode"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggui/internal/cache"
)

// Glyph is a cached character: its metrics and, for visible glyphs, where its
// bitmap lives in the atlas. A Glyph never changes after it is created.
type Glyph struct {
	// Rune is the cached character.
	Rune rune

	// AdvanceX and AdvanceY are the pen displacement after this glyph.
	AdvanceX, AdvanceY float64

	// BearingX and BearingY are the offset from the pen position to the
	// bitmap's bottom-left corner, y growing up.
	BearingX, BearingY float64

	// Width and Height are the unpadded bitmap dimensions.
	Width, Height int

	// Region is the padded atlas region holding the bitmap.
	// Nil for whitespace and other glyphs without pixels.
	Region *Region
}

// HasBitmap reports whether the glyph occupies atlas space.
func (g Glyph) HasBitmap() bool {
	return g.Region != nil
}

// Stats holds cache statistics.
type Stats struct {
	Hits           uint64
	Misses         uint64
	Evictions      uint64
	Uploads        uint64
	Rasterizations uint64

	// Glyphs is the number of resident glyphs.
	Glyphs int

	// Utilization is the fraction of atlas area in use (0.0 to 1.0).
	Utilization float64
}

// Cache memoizes glyph placement in a fixed-size atlas and evicts the least
// recently used glyph when a new one does not fit.
//
// Cache is NOT safe for concurrent use.
type Cache struct {
	config  Config
	alloc   *ShelfAllocator
	glyphs  *cache.LRU[rune, Glyph]
	raster  Rasterizer
	texture Texture

	onEvict func(Glyph)
	stats   Stats
}

// NewCache creates a glyph cache that rasterizes with r and writes pixels to tex.
func NewCache(config Config, r Rasterizer, tex Texture) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilRasterizer
	}
	if tex == nil {
		return nil, ErrNilTexture
	}

	slogger().Info("atlas created",
		"width", config.Width, "height", config.Height, "font_size", config.FontSize)

	return &Cache{
		config:  config,
		alloc:   NewShelfAllocator(config.Width, config.Height),
		glyphs:  cache.NewLRU[rune, Glyph](),
		raster:  r,
		texture: tex,
	}, nil
}

// Get returns the cached glyph for r, rasterizing and uploading it on a miss.
//
// A hit marks r most recently used. On a miss the glyph is rasterized and
// written, inside a transparent border on every edge, to a padded region; if
// the atlas is full, glyphs are evicted in least-recently-used order until it
// fits. The returned error is a *GlyphError wrapping ErrGlyphTooLarge or the
// collaborator's failure. Failed runes are not cached. Glyphs are rasterized
// at Config.FontSize; a different size needs its own Cache.
func (c *Cache) Get(r rune) (Glyph, error) {
	if g, ok := c.glyphs.Get(r); ok {
		c.stats.Hits++
		return g, nil
	}
	c.stats.Misses++

	if unicode.IsSpace(r) {
		return c.insertWhitespace(r)
	}

	m, bitmap, err := c.raster.Rasterize(r, c.config.FontSize)
	if err != nil {
		return Glyph{}, &GlyphError{Rune: r, Op: "rasterize", Err: err}
	}
	c.stats.Rasterizations++

	g := glyphFromMetrics(r, m)
	if bitmap == nil || bitmap.Bounds().Empty() {
		g.Width, g.Height = 0, 0
		c.glyphs.Put(r, g)
		return g, nil
	}

	size := bitmap.Bounds().Size()
	g.Width, g.Height = size.X, size.Y

	pad := c.config.Padding
	region, err := c.allocate(size.X+2*pad, size.Y+2*pad)
	if err != nil {
		return Glyph{}, &GlyphError{Rune: r, Op: "allocate", Err: err}
	}

	// Upload the padded bitmap: the border of a reused region must be clear.
	if err := c.texture.Upload(region.Min(), padBitmap(bitmap, pad)); err != nil {
		if derr := c.alloc.Deallocate(region); derr != nil {
			slogger().Warn("atlas: release after failed upload", "region", region, "err", derr)
		}
		return Glyph{}, &GlyphError{Rune: r, Op: "upload", Err: err}
	}
	c.stats.Uploads++

	g.Region = &region
	c.glyphs.Put(r, g)
	slogger().Debug("atlas: cached glyph", "rune", string(r), "region", region)
	return g, nil
}

// padBitmap returns bitmap centred in a transparent border of pad pixels.
func padBitmap(bitmap *image.Alpha, pad int) *image.Alpha {
	if pad == 0 {
		return bitmap
	}
	size := bitmap.Bounds().Size()
	dst := image.NewAlpha(image.Rect(0, 0, size.X+2*pad, size.Y+2*pad))
	draw.Draw(dst, image.Rect(pad, pad, pad+size.X, pad+size.Y), bitmap, bitmap.Bounds().Min, draw.Src)
	return dst
}

// insertWhitespace caches an advance-only glyph. It never allocates.
func (c *Cache) insertWhitespace(r rune) (Glyph, error) {
	m, err := c.raster.Metrics(r, c.config.FontSize)
	if err != nil {
		return Glyph{}, &GlyphError{Rune: r, Op: "measure", Err: err}
	}
	g := glyphFromMetrics(r, m)
	g.Width, g.Height = 0, 0
	c.glyphs.Put(r, g)
	return g, nil
}

// allocate finds a w×h region, evicting glyphs until one is available.
func (c *Cache) allocate(w, h int) (Region, error) {
	// Evicting cannot help an item larger than the whole atlas.
	if !c.alloc.Fits(w, h) {
		return Region{}, ErrGlyphTooLarge
	}
	for {
		if region, ok := c.alloc.Allocate(w, h); ok {
			return region, nil
		}
		if !c.evictOldest() {
			return Region{}, ErrGlyphTooLarge
		}
	}
}

// evictOldest removes the least recently used glyph and frees its region.
// Returns false if the cache is empty.
func (c *Cache) evictOldest() bool {
	r, g, ok := c.glyphs.RemoveOldest()
	if !ok {
		return false
	}
	if g.Region != nil {
		if err := c.alloc.Deallocate(*g.Region); err != nil {
			slogger().Warn("atlas: evicted glyph had untracked region", "rune", string(r), "err", err)
		}
	}
	c.stats.Evictions++
	slogger().Debug("atlas: evicted glyph", "rune", string(r))

	if c.onEvict != nil {
		c.onEvict(g)
	}
	return true
}

// Advance returns the horizontal advance of r without rasterizing it. A
// resident glyph answers from the cache; otherwise the rasterizer's metrics
// are used. Advance never allocates, uploads or changes recency.
func (c *Cache) Advance(r rune) (float64, error) {
	if g, ok := c.glyphs.Peek(r); ok {
		return g.AdvanceX, nil
	}
	m, err := c.raster.Metrics(r, c.config.FontSize)
	if err != nil {
		return 0, &GlyphError{Rune: r, Op: "measure", Err: err}
	}
	return m.AdvanceX, nil
}

// OnEvict registers fn to be called with every evicted glyph.
// Pass nil to remove the hook.
func (c *Cache) OnEvict(fn func(Glyph)) {
	c.onEvict = fn
}

// Peek returns the cached glyph for r without rasterizing or touching recency.
func (c *Cache) Peek(r rune) (Glyph, bool) {
	return c.glyphs.Peek(r)
}

// Contains reports whether r is resident.
func (c *Cache) Contains(r rune) bool {
	return c.glyphs.Contains(r)
}

// Resident returns the cached runes from most to least recently used.
func (c *Cache) Resident() []rune {
	return c.glyphs.Keys()
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return c.glyphs.Len()
}

// TexCoords returns the normalized texture rectangle of g's bitmap, with
// (u0, v0) at the bitmap's top-left. ok is false for glyphs without a bitmap.
func (c *Cache) TexCoords(g Glyph) (u0, v0, u1, v1 float32, ok bool) {
	if g.Region == nil {
		return 0, 0, 0, 0, false
	}
	inner := g.Region.Inset(c.config.Padding)
	w, h := float32(c.config.Width), float32(c.config.Height)
	return float32(inner.X) / w, float32(inner.Y) / h,
		float32(inner.X+inner.Width) / w, float32(inner.Y+inner.Height) / h, true
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// FontSize returns the pixel size the cache rasterizes at.
func (c *Cache) FontSize() float64 {
	return c.config.FontSize
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Glyphs = c.glyphs.Len()
	s.Utilization = c.alloc.Utilization()
	return s
}

// Clear drops every glyph and frees the whole atlas.
// Texture contents are left as they are; they are overwritten on reuse.
func (c *Cache) Clear() {
	c.glyphs.Clear()
	c.alloc.Reset()
}

func glyphFromMetrics(r rune, m Metrics) Glyph {
	return Glyph{
		Rune:     r,
		AdvanceX: m.AdvanceX,
		AdvanceY: m.AdvanceY,
		BearingX: m.BearingX,
		BearingY: m.BearingY,
		Width:    m.Width,
		Height:   m.Height,
	}
}
