// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/text"
)

var (
	// ErrNoFrame is returned when saving before anything was rendered.
	ErrNoFrame = errors.New("snapshot: no frame rendered")

	// ErrEmptyViewport is returned for a viewport with zero area.
	ErrEmptyViewport = errors.New("snapshot: viewport is empty")
)

// AtlasSource provides the CPU copy of the glyph atlas.
// *atlas.ImageTexture implements it.
type AtlasSource interface {
	Image() *image.RGBA
}

// Renderer turns batches into single-page PDF documents.
type Renderer struct {
	atlas    AtlasSource
	viewport layout.Bbox
	clear    color.Color

	pdf    []byte
	frames int
}

// New creates a renderer for the given viewport. Glyph pixels are read from
// src at render time.
func New(src AtlasSource, viewport layout.Bbox) (*Renderer, error) {
	if viewport.IsEmpty() {
		return nil, ErrEmptyViewport
	}
	return &Renderer{
		atlas:    src,
		viewport: viewport,
		clear:    color.Black,
	}, nil
}

// SetClearColor sets the page background.
func (r *Renderer) SetClearColor(c layout.Color) {
	r.clear = toColor(c)
}

// Render draws b onto a fresh page and keeps the encoded PDF.
// It satisfies ggui.Renderer.
func (r *Renderer) Render(b *text.Batch) error {
	w, h := r.viewport.Width(), r.viewport.Height()

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)

	ctx.SetStrokeColor(color.RGBA{})
	ctx.SetFillColor(r.clear)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	for _, q := range b.Rects {
		r.drawRect(ctx, q)
	}
	for _, q := range b.Glyphs {
		r.drawGlyph(ctx, q)
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("snapshot: write pdf: %w", err)
	}

	r.pdf = buf.Bytes()
	r.frames++
	return nil
}

func (r *Renderer) drawRect(ctx *canvas.Context, q text.RectQuad) {
	if q.Box.IsEmpty() {
		return
	}
	ctx.SetFillColor(toColor(q.Color))
	ctx.DrawPath(q.Box.MinX-r.viewport.MinX, q.Box.MinY-r.viewport.MinY,
		canvas.Rectangle(q.Box.Width(), q.Box.Height()))
}

func (r *Renderer) drawGlyph(ctx *canvas.Context, q text.GlyphQuad) {
	if r.atlas == nil || q.Pos.IsEmpty() {
		return
	}
	img := tint(r.atlas.Image(), q)
	if img == nil {
		return
	}
	dpmm := float64(img.Bounds().Dx()) / q.Pos.Width()
	ctx.DrawImage(q.Pos.MinX-r.viewport.MinX, q.Pos.MinY-r.viewport.MinY, img, canvas.DPMM(dpmm))
}

// tint crops the quad's texture rectangle out of the atlas and colors it.
// The atlas stores coverage in the alpha channel.
func tint(src *image.RGBA, q text.GlyphQuad) *image.NRGBA {
	size := src.Bounds().Size()
	rect := image.Rect(
		int(math.Round(float64(q.U0)*float64(size.X))),
		int(math.Round(float64(q.V0)*float64(size.Y))),
		int(math.Round(float64(q.U1)*float64(size.X))),
		int(math.Round(float64(q.V1)*float64(size.Y))),
	).Intersect(src.Bounds())
	if rect.Empty() {
		return nil
	}

	cr, cg, cb := clamp8(q.Color[0]), clamp8(q.Color[1]), clamp8(q.Color[2])
	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			a := float32(src.RGBAAt(x, y).A) / 255 * q.Color[3]
			dst.SetNRGBA(x-rect.Min.X, y-rect.Min.Y, color.NRGBA{R: cr, G: cg, B: cb, A: clamp8(a)})
		}
	}
	return dst
}

func clamp8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

func toColor(c layout.Color) color.Color {
	return canvas.RGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
}

// PDF returns the document produced by the last Render.
func (r *Renderer) PDF() []byte {
	return r.pdf
}

// Frames returns the number of batches rendered.
func (r *Renderer) Frames() int {
	return r.frames
}

// WriteTo writes the last document to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	if r.pdf == nil {
		return 0, ErrNoFrame
	}
	n, err := w.Write(r.pdf)
	return int64(n), err
}

// Save writes the last document to path.
func (r *Renderer) Save(path string) error {
	if r.pdf == nil {
		return ErrNoFrame
	}
	if err := os.WriteFile(path, r.pdf, 0o644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	slogger().Info("snapshot written", "path", path, "bytes", len(r.pdf))
	return nil
}
