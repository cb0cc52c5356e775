// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ggui/atlas"
)

// AtlasTexture is the glyph atlas in GPU memory. Coverage bitmaps are
// expanded to premultiplied white RGBA on upload, matching
// atlas.ImageTexture.
type AtlasTexture struct {
	dev     Device
	texture hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32

	// staging is reused across uploads.
	staging []byte
	uploads int
}

// NewAtlasTexture creates a width×height RGBA8 texture and its view.
func NewAtlasTexture(dev Device, width, height int) (*AtlasTexture, error) {
	if dev.Device == nil || dev.Queue == nil {
		return nil, ErrNilDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gpu: invalid atlas size %dx%d", width, height)
	}

	tex, err := dev.Device.CreateTexture(&hal.TextureDescriptor{
		Label: "ggui_glyph_atlas",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create atlas texture: %w", err)
	}

	view, err := dev.Device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "ggui_glyph_atlas_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		dev.Device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: create atlas view: %w", err)
	}

	slogger().Info("gpu: atlas texture created", "width", width, "height", height)
	return &AtlasTexture{
		dev:     dev,
		texture: tex,
		view:    view,
		width:   uint32(width),
		height:  uint32(height),
	}, nil
}

// Upload implements atlas.Texture.
func (t *AtlasTexture) Upload(origin image.Point, bitmap *image.Alpha) error {
	if t.texture == nil {
		return ErrReleased
	}
	if bitmap == nil {
		return nil
	}
	b := bitmap.Bounds()
	dst := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
	if !dst.In(image.Rect(0, 0, int(t.width), int(t.height))) {
		return fmt.Errorf("%w: %v", atlas.ErrRegionOutOfBounds, dst)
	}
	if b.Empty() {
		return nil
	}

	w, h := b.Dx(), b.Dy()
	data := t.expand(bitmap)

	t.dev.Queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: uint32(origin.X), Y: uint32(origin.Y), Z: 0},
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w * 4),
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	t.uploads++
	return nil
}

// expand converts coverage to RGBA rows in the staging buffer.
func (t *AtlasTexture) expand(bitmap *image.Alpha) []byte {
	b := bitmap.Bounds()
	n := b.Dx() * b.Dy() * 4
	if cap(t.staging) < n {
		t.staging = make([]byte, n)
	}
	data := t.staging[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := bitmap.AlphaAt(x, y).A
			data[i], data[i+1], data[i+2], data[i+3] = a, a, a, a
			i += 4
		}
	}
	return data
}

// Texture returns the HAL texture.
func (t *AtlasTexture) Texture() hal.Texture { return t.texture }

// View returns the texture view for binding.
func (t *AtlasTexture) View() hal.TextureView { return t.view }

// Size returns the texture size in pixels.
func (t *AtlasTexture) Size() (width, height int) {
	return int(t.width), int(t.height)
}

// Uploads returns the number of glyph uploads so far.
func (t *AtlasTexture) Uploads() int { return t.uploads }

// Destroy releases the texture and view. Safe to call twice.
func (t *AtlasTexture) Destroy() {
	if t.view != nil {
		t.dev.Device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.dev.Device.DestroyTexture(t.texture)
		t.texture = nil
	}
}

var _ atlas.Texture = (*AtlasTexture)(nil)
