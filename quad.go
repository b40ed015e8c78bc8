package qrend

import "golang.org/x/image/math/f32"

// Quad is an axis-aligned rectangle in pixel coordinates with a fill color.
// X and Y locate the top-left corner; W and H extend right and down.
type Quad struct {
	X, Y, W, H float32
	Color      Color
}

// CornerIndex identifies one corner of a quad.
type CornerIndex int

const (
	// TopLeft is corner 0, at (x, y).
	TopLeft CornerIndex = iota

	// TopRight is corner 1, at (x+w, y).
	TopRight

	// BottomLeft is corner 2, at (x, y+h).
	BottomLeft

	// BottomRight is corner 3, at (x+w, y+h).
	BottomRight
)

// String returns the corner name.
func (i CornerIndex) String() string {
	switch i {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// cornerOffsets is the fixed corner table. Entry i holds the multipliers
// applied to (w, h) when expanding a quad: offset = (dx*w, dy*h).
// The same table appears in shaders/quad_rect.wgsl and the two must agree.
var cornerOffsets = [4]f32.Vec2{
	{0, 0}, // TopLeft
	{1, 0}, // TopRight
	{0, 1}, // BottomLeft
	{1, 1}, // BottomRight
}

// Offset returns the corner's (dx, dy) multipliers from the corner table.
// The index is masked to the table size, so any CornerIndex value is safe.
func (i CornerIndex) Offset() f32.Vec2 {
	return cornerOffsets[i&3]
}

// CornerOf maps a running vertex counter to a corner index.
// Counters count corners across all quads, so consecutive values cycle
// TopLeft, TopRight, BottomLeft, BottomRight.
func CornerOf(counter uint32) CornerIndex {
	return CornerIndex(counter % 4)
}

// Corner returns the pixel-space position of one corner.
// The index is masked to the table size, so any CornerIndex value is safe.
func (q Quad) Corner(i CornerIndex) f32.Vec2 {
	off := cornerOffsets[i&3]
	return f32.Vec2{q.X + off[0]*q.W, q.Y + off[1]*q.H}
}

// Corners returns all four corner positions in corner-table order.
func (q Quad) Corners() [4]f32.Vec2 {
	return [4]f32.Vec2{
		q.Corner(TopLeft),
		q.Corner(TopRight),
		q.Corner(BottomLeft),
		q.Corner(BottomRight),
	}
}
