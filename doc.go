// Package ggui draws text and solid rectangles laid out by a box model.
//
// # Overview
//
// ggui is built around a glyph atlas: a single fixed-size texture into which
// rasterized glyphs are packed on demand. When the atlas fills up, the least
// recently used glyphs are evicted to make room. On top of the atlas sits a
// small layout engine that splits a rectangle among Hbox/Vbox children and
// wraps text against the leaf boxes.
//
// # Quick Start
//
//	raster, _ := text.NewDefaultRasterizer()
//	tex := atlas.NewImageTexture(1024, 1024)
//	frame, _ := ggui.NewFrame(ggui.DefaultConfig(), raster, tex, renderer)
//
//	root := layout.NewVbox(
//	    layout.NewLeaf(layout.NewText("bottom row")),
//	    layout.NewLeaf(&layout.SolidRect{Color: ggui.Blue.Vertex()}),
//	)
//	_ = frame.Draw(root, layout.NewBbox(0, 0, 800, 600))
//
// # Architecture
//
// The library is organized into:
//   - atlas: shelf allocator and LRU glyph cache
//   - text: OpenType rasterizer and the line flow engine
//   - layout: Bbox, the node tree and the recursive layout pass
//   - dsl: a small declaration language for layout trees
//   - gpu: wgpu texture, vertex buffers and shaders for the batch
//   - snapshot: offline PDF rendering of a batch
//
// # Coordinate System
//
// Layout space is y-up:
//   - X increases right
//   - Y increases up
//   - A Vbox places its first child at the bottom
//
// Atlas space is the usual image space, origin at the top-left, y down.
//
// # Logging
//
// ggui is silent by default. Use SetLogger to route the log/slog output of
// every sub-package to one logger.
package ggui
