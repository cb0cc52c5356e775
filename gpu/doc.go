// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu moves a frame's glyph atlas and quad batch onto a wgpu device.
//
// It provides three pieces, all on top of github.com/gogpu/wgpu/hal:
//
//   - AtlasTexture, an RGBA8 texture that implements atlas.Texture, so the
//     glyph cache writes rasterized glyphs straight into GPU memory
//   - QuadBuffers, which packs a text.Batch into vertex and index buffers
//   - Shaders, the WGSL quad shader compiled to SPIR-V with naga
//
// Creating the render pipeline and recording the draw call is left to the
// host application, which owns the surface. The vertex layout it must use is
// described by VertexStride and the Vertex type.
//
// A device can be passed directly, or taken from a gpucontext.DeviceProvider
// whose HAL types are exposed through HalDevice/HalQueue:
//
//	dev, err := gpu.DeviceFromProvider(provider)
//	tex, err := gpu.NewAtlasTexture(dev, 1024, 1024)
package gpu
