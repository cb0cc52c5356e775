package atlas

import (
	"fmt"
	"image"
	"image/color"
)

// Texture is the capability the cache uses to write glyph pixels into the
// shared atlas texture. It is passed to NewCache explicitly; the cache never
// reaches for a global texture handle.
type Texture interface {
	// Upload writes bitmap with its top-left corner at origin.
	Upload(origin image.Point, bitmap *image.Alpha) error
}

// ImageTexture is a CPU-side atlas texture backed by an *image.RGBA.
// Coverage values are expanded to premultiplied white, so the image can be
// sampled directly as an RGBA texture.
type ImageTexture struct {
	img *image.RGBA

	// uploads counts successful Upload calls.
	uploads int
}

// NewImageTexture creates a transparent width×height atlas image.
func NewImageTexture(width, height int) *ImageTexture {
	return &ImageTexture{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Upload implements Texture.
func (t *ImageTexture) Upload(origin image.Point, bitmap *image.Alpha) error {
	if bitmap == nil {
		return nil
	}
	b := bitmap.Bounds()
	dst := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
	if !dst.In(t.img.Bounds()) {
		return fmt.Errorf("%w: %v not in %v", ErrRegionOutOfBounds, dst, t.img.Bounds())
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := bitmap.AlphaAt(b.Min.X+x, b.Min.Y+y).A
			t.img.SetRGBA(origin.X+x, origin.Y+y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	t.uploads++
	return nil
}

// Image returns the backing image. The caller must not modify it.
func (t *ImageTexture) Image() *image.RGBA {
	return t.img
}

// Uploads returns the number of successful uploads.
func (t *ImageTexture) Uploads() int {
	return t.uploads
}
