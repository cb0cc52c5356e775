// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/text"
)

// Vertex is one corner of a quad.
//
// Memory layout (32 bytes):
//
//	offset 0:  Position [2]float32 (layout space)
//	offset 8:  TexCoord [2]float32 (atlas UV, -1 for solid quads)
//	offset 16: Color    [4]float32 (straight alpha)
type Vertex struct {
	Position [2]float32
	TexCoord [2]float32
	Color    [4]float32
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 32

// maxQuads is the number of quads 16-bit indices can address.
const maxQuads = 1 << 14

// solidUV marks a vertex that is not sampled from the atlas.
const solidUV = -1

// quadIndices is the index pattern of one quad, two triangles sharing the
// 0-2 diagonal:
//
//	0   3
//	+---+
//	|\  |
//	| \ |
//	|  \|
//	+---+
//	1   2
var quadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// PackBatch converts a batch to vertices and indices. Solid rects come first
// so glyphs are drawn over them.
func PackBatch(b *text.Batch) ([]Vertex, []uint16, error) {
	n := len(b.Rects) + len(b.Glyphs)
	if n > maxQuads {
		return nil, nil, ErrBatchTooLarge
	}
	vertices := make([]Vertex, 0, n*4)
	indices := make([]uint16, 0, n*6)

	for _, r := range b.Rects {
		vertices = appendQuad(vertices, r.Box, solidUV, solidUV, solidUV, solidUV, r.Color)
	}
	for _, g := range b.Glyphs {
		vertices = appendQuad(vertices, g.Pos, g.U0, g.V0, g.U1, g.V1, g.Color)
	}
	for q := 0; q < n; q++ {
		base := uint16(q * 4)
		for _, i := range quadIndices {
			indices = append(indices, base+i)
		}
	}
	return vertices, indices, nil
}

// appendQuad appends the four corners of box. (u0, v0) maps to the top-left
// corner; layout space is y-up, so that is (MinX, MaxY).
func appendQuad(dst []Vertex, box layout.Bbox, u0, v0, u1, v1 float32, c layout.Color) []Vertex {
	x0, y0 := float32(box.MinX), float32(box.MinY)
	x1, y1 := float32(box.MaxX), float32(box.MaxY)
	return append(dst,
		Vertex{Position: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v0}, Color: c},
		Vertex{Position: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v1}, Color: c},
		Vertex{Position: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v1}, Color: c},
		Vertex{Position: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v0}, Color: c},
	)
}

// vertexBytes serializes vertices little-endian into dst.
func vertexBytes(dst []byte, vertices []Vertex) []byte {
	dst = dst[:0]
	for i := range vertices {
		v := &vertices[i]
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Position[0]))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Position[1]))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.TexCoord[0]))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.TexCoord[1]))
		for _, c := range v.Color {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(c))
		}
	}
	return dst
}

// indexBytes serializes indices little-endian into dst. Six indices per
// quad keep the size a multiple of four bytes.
func indexBytes(dst []byte, indices []uint16) []byte {
	dst = dst[:0]
	for _, i := range indices {
		dst = binary.LittleEndian.AppendUint16(dst, i)
	}
	return dst
}

// viewportBytes serializes the viewport uniform: origin and size.
func viewportBytes(viewport layout.Bbox) []byte {
	buf := make([]byte, 0, 16)
	for _, f := range [4]float64{viewport.MinX, viewport.MinY, viewport.Width(), viewport.Height()} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(f)))
	}
	return buf
}
