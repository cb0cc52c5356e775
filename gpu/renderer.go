// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/text"
)

// Renderer uploads each frame's batch to GPU buffers. The host records the
// draw call with the buffers, shaders and atlas view it exposes.
type Renderer struct {
	dev      Device
	atlas    *AtlasTexture
	buffers  *QuadBuffers
	shaders  *Shaders
	viewport layout.Bbox
	frames   int
}

// NewRenderer creates the atlas texture, buffers and shaders on dev.
func NewRenderer(dev Device, atlasWidth, atlasHeight int, viewport layout.Bbox) (*Renderer, error) {
	tex, err := NewAtlasTexture(dev, atlasWidth, atlasHeight)
	if err != nil {
		return nil, err
	}
	buffers, err := NewQuadBuffers(dev)
	if err != nil {
		tex.Destroy()
		return nil, err
	}
	shaders, err := CompileShaders(dev)
	if err != nil {
		buffers.Destroy()
		tex.Destroy()
		return nil, err
	}
	return &Renderer{
		dev:      dev,
		atlas:    tex,
		buffers:  buffers,
		shaders:  shaders,
		viewport: viewport,
	}, nil
}

// Render uploads b. It satisfies ggui.Renderer.
func (r *Renderer) Render(b *text.Batch) error {
	if err := r.buffers.Upload(b, r.viewport); err != nil {
		return err
	}
	r.frames++
	return nil
}

// SetViewport changes the layout-space rectangle mapped to the surface.
func (r *Renderer) SetViewport(viewport layout.Bbox) {
	r.viewport = viewport
}

// Atlas returns the atlas texture, to be passed to atlas.NewCache.
func (r *Renderer) Atlas() *AtlasTexture { return r.atlas }

// Buffers returns the quad buffers.
func (r *Renderer) Buffers() *QuadBuffers { return r.buffers }

// Shaders returns the compiled shader module.
func (r *Renderer) Shaders() *Shaders { return r.shaders }

// Frames returns the number of batches rendered.
func (r *Renderer) Frames() int { return r.frames }

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	r.shaders.Destroy()
	r.buffers.Destroy()
	r.atlas.Destroy()
}
