package qrend

// InputMode selects how quad geometry reaches the vertex stage.
type InputMode int

const (
	// InputModeCorners streams precomputed corner vertices. The host
	// expands each quad into six vertices (two triangles) carrying the
	// corner position as two u32 pixel coordinates; the shader only maps
	// to NDC. The viewport uniform uses integer pixels. This is the
	// default mode.
	InputModeCorners InputMode = iota

	// InputModeRects streams one instance per quad carrying the rect as
	// four f32 values; the shader expands corners from the corner table
	// using the vertex index. The viewport uniform uses float pixels.
	InputModeRects
)

// String returns the input mode name.
func (m InputMode) String() string {
	switch m {
	case InputModeCorners:
		return "Corners"
	case InputModeRects:
		return "Rects"
	default:
		return "Unknown"
	}
}

// ExtentUnit returns the wire unit the mode's viewport uniform expects.
func (m InputMode) ExtentUnit() ExtentUnit {
	if m == InputModeRects {
		return UnitFloatPixels
	}
	return UnitIntegerPixels
}

// VertexStride returns the byte stride of the mode's vertex buffer.
func (m InputMode) VertexStride() int {
	if m == InputModeRects {
		return RectInstanceStride
	}
	return CornerVertexStride
}
