// Package atlas packs rasterized glyph bitmaps into a single fixed-size
// texture and keeps track of which characters are resident.
//
// # Overview
//
// Two pieces cooperate:
//
//   - [ShelfAllocator] hands out disjoint rectangles inside the atlas bounds
//     and takes them back when glyphs are evicted.
//   - [Cache] memoizes glyph placement per rune. On a miss it rasterizes the
//     glyph, allocates a padded region, uploads the bitmap through the
//     [Texture] capability, and evicts least-recently-used glyphs until the
//     new one fits.
//
// # Quick Start
//
//	tex := atlas.NewImageTexture(1024, 1024)
//	c, err := atlas.NewCache(atlas.DefaultConfig(), rasterizer, tex)
//	if err != nil {
//	    return err
//	}
//	g, err := c.Get('A')
//	if errors.Is(err, atlas.ErrGlyphTooLarge) {
//	    // skip this character
//	}
//
// # Whitespace
//
// Whitespace runes are cached with advance metrics only. They never touch the
// allocator and never cause an eviction.
//
// # Eviction
//
// Eviction order is global recency, not the current frame's working set. A
// glyph drawn earlier in a frame can be evicted later in the same frame and
// rasterized again when it reappears.
//
// # Thread Safety
//
// Cache and ShelfAllocator are not safe for concurrent use.
package atlas
