package qrend

import (
	"encoding/binary"
	"math"
)

// CornerVertexStride is the byte stride of one corner-stream vertex:
//
//	offset  size  field
//	0       16    color     4 x f32 (RGBA)
//	16      8     position  2 x u32 (pixel x, y)
const CornerVertexStride = 24

// RectInstanceStride is the byte stride of one rect-stream instance:
//
//	offset  size  field
//	0       16    color  4 x f32 (RGBA)
//	16      16    rect   4 x f32 (x, y, w, h)
const RectInstanceStride = 32

// VerticesPerQuad is the number of corner-stream vertices one quad
// expands into: two triangles sharing the top-left/bottom-right diagonal.
const VerticesPerQuad = 6

// RectVerticesPerInstance is the number of vertices drawn per rect
// instance: the four corners as a triangle strip.
const RectVerticesPerInstance = 4

// quadTriangles lists the corner order of a quad's two triangles in the
// corner stream: (TL, BL, BR) then (TR, TL, BR).
var quadTriangles = [VerticesPerQuad]CornerIndex{
	TopLeft, BottomLeft, BottomRight,
	TopRight, TopLeft, BottomRight,
}

// PutCornerVertex encodes one corner-stream vertex into dst, which must
// be at least CornerVertexStride bytes. The position is the precomputed
// corner in whole pixels.
func PutCornerVertex(dst []byte, c Color, x, y uint32) {
	r, g, b, a := c.Float32s()
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(r))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(g))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(b))
	binary.LittleEndian.PutUint32(dst[12:16], math.Float32bits(a))
	binary.LittleEndian.PutUint32(dst[16:20], x)
	binary.LittleEndian.PutUint32(dst[20:24], y)
}

// PutRectInstance encodes one rect-stream instance into dst, which must
// be at least RectInstanceStride bytes.
func PutRectInstance(dst []byte, q Quad) {
	r, g, b, a := q.Color.Float32s()
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(r))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(g))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(b))
	binary.LittleEndian.PutUint32(dst[12:16], math.Float32bits(a))
	binary.LittleEndian.PutUint32(dst[16:20], math.Float32bits(q.X))
	binary.LittleEndian.PutUint32(dst[20:24], math.Float32bits(q.Y))
	binary.LittleEndian.PutUint32(dst[24:28], math.Float32bits(q.W))
	binary.LittleEndian.PutUint32(dst[28:32], math.Float32bits(q.H))
}

// AppendQuadVertices appends the encoded vertex data for one quad in the
// given input mode and returns the extended slice. Corner mode appends
// six corner vertices with positions rounded to whole pixels; rect mode
// appends a single instance record.
func AppendQuadVertices(dst []byte, q Quad, mode InputMode) []byte {
	if mode == InputModeRects {
		var buf [RectInstanceStride]byte
		PutRectInstance(buf[:], q)
		return append(dst, buf[:]...)
	}
	var buf [CornerVertexStride]byte
	for _, ci := range quadTriangles {
		p := q.Corner(ci)
		PutCornerVertex(buf[:], q.Color, u32FromF32(p[0]), u32FromF32(p[1]))
		dst = append(dst, buf[:]...)
	}
	return dst
}
