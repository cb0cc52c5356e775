// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/text"
)

// minBufferSize is the smallest vertex or index buffer allocated.
const minBufferSize = 4096

// QuadBuffers holds the per-frame vertex, index and uniform buffers.
// Buffers grow to fit the largest batch seen and are never shrunk.
type QuadBuffers struct {
	dev Device

	vertexBuf hal.Buffer
	vertexCap uint64
	indexBuf  hal.Buffer
	indexCap  uint64
	uniforms  hal.Buffer

	vertexData []byte
	indexData  []byte
	indexCount uint32
}

// NewQuadBuffers creates the uniform buffer. Vertex and index buffers are
// created on the first upload.
func NewQuadBuffers(dev Device) (*QuadBuffers, error) {
	if dev.Device == nil || dev.Queue == nil {
		return nil, ErrNilDevice
	}
	uniforms, err := dev.Device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ggui_viewport",
		Size:  16,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create uniform buffer: %w", err)
	}
	return &QuadBuffers{dev: dev, uniforms: uniforms}, nil
}

// Upload packs b and writes it, with the viewport, to the GPU buffers.
func (q *QuadBuffers) Upload(b *text.Batch, viewport layout.Bbox) error {
	if q.uniforms == nil {
		return ErrReleased
	}
	vertices, indices, err := PackBatch(b)
	if err != nil {
		return err
	}

	q.vertexData = vertexBytes(q.vertexData, vertices)
	q.indexData = indexBytes(q.indexData, indices)
	q.indexCount = uint32(len(indices))

	if err := q.ensure(&q.vertexBuf, &q.vertexCap, uint64(len(q.vertexData)),
		"ggui_vertices", gputypes.BufferUsageVertex); err != nil {
		return err
	}
	if err := q.ensure(&q.indexBuf, &q.indexCap, uint64(len(q.indexData)),
		"ggui_indices", gputypes.BufferUsageIndex); err != nil {
		return err
	}

	if len(q.vertexData) > 0 {
		q.dev.Queue.WriteBuffer(q.vertexBuf, 0, q.vertexData)
		q.dev.Queue.WriteBuffer(q.indexBuf, 0, q.indexData)
	}
	q.dev.Queue.WriteBuffer(q.uniforms, 0, viewportBytes(viewport))

	slogger().Debug("gpu: batch uploaded",
		"quads", len(vertices)/4, "vertex_bytes", len(q.vertexData))
	return nil
}

// ensure grows *buf to hold size bytes.
func (q *QuadBuffers) ensure(buf *hal.Buffer, capacity *uint64, size uint64, label string, usage gputypes.BufferUsage) error {
	if *buf != nil && *capacity >= size {
		return nil
	}
	newCap := max(*capacity, minBufferSize)
	for newCap < size {
		newCap *= 2
	}

	nb, err := q.dev.Device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  newCap,
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create %s buffer (%d bytes): %w", label, newCap, err)
	}
	if *buf != nil {
		q.dev.Device.DestroyBuffer(*buf)
	}
	*buf, *capacity = nb, newCap
	slogger().Debug("gpu: buffer grown", "label", label, "size", newCap)
	return nil
}

// VertexBuffer returns the vertex buffer, nil before the first upload.
func (q *QuadBuffers) VertexBuffer() hal.Buffer { return q.vertexBuf }

// IndexBuffer returns the uint16 index buffer, nil before the first upload.
func (q *QuadBuffers) IndexBuffer() hal.Buffer { return q.indexBuf }

// UniformBuffer returns the viewport uniform buffer.
func (q *QuadBuffers) UniformBuffer() hal.Buffer { return q.uniforms }

// IndexCount returns the number of indices to draw for the last upload.
func (q *QuadBuffers) IndexCount() uint32 { return q.indexCount }

// Capacity returns the current vertex and index buffer sizes in bytes.
func (q *QuadBuffers) Capacity() (vertexBytes, indexBytes uint64) {
	return q.vertexCap, q.indexCap
}

// Destroy releases all buffers. Safe to call twice.
func (q *QuadBuffers) Destroy() {
	for _, b := range []*hal.Buffer{&q.vertexBuf, &q.indexBuf, &q.uniforms} {
		if *b != nil {
			q.dev.Device.DestroyBuffer(*b)
			*b = nil
		}
	}
	q.vertexCap, q.indexCap = 0, 0
}
