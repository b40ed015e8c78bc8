package qrend

import "golang.org/x/image/math/f32"

// This file is the pure Go reference for the WGSL vertex and fragment
// stages in render/shaders. The expressions here mirror the shader source
// operation for operation (same order, same float32 width) so that host
// code and tests can predict exactly what the GPU computes.

// ToNDC maps a pixel-space position into normalized device coordinates
// for the given viewport extent:
//
//	ndc_x = (px / W) * 2 - 1
//	ndc_y = 1 - (py / H) * 2
//
// Pixel y grows downward while NDC y grows upward, so the y axis flips:
// the top-left pixel corner maps to (-1, 1) and the bottom-right to
// (1, -1).
//
// A zero-extent viewport divides by zero; following IEEE 754 the result
// carries +/-Inf (or NaN for 0/0) through unchanged, exactly as the GPU
// would. Use [Extent.Valid] to reject that case up front.
func ToNDC(p f32.Vec2, e Extent) f32.Vec2 {
	return f32.Vec2{
		p[0]/e.Width()*2 - 1,
		1 - p[1]/e.Height()*2,
	}
}

// ClipPosition maps a pixel-space position to the clip-space vector the
// vertex stage emits: the NDC x and y with z=0 and w=1. Quads are flat,
// so every vertex sits on the near plane with no perspective.
func ClipPosition(p f32.Vec2, e Extent) f32.Vec4 {
	ndc := ToNDC(p, e)
	return f32.Vec4{ndc[0], ndc[1], 0, 1}
}

// FragmentColor is the fragment stage: the interpolated vertex color is
// written out unchanged.
func FragmentColor(c f32.Vec4) f32.Vec4 {
	return c
}

// TransformVertex is the full vertex-stage reference for rect-instanced
// input: the running vertex counter selects a corner from the corner
// table, the corner offset expands the quad into a pixel-space position,
// and the position maps to clip space. The returned color is the quad
// color, carried through for the rasterizer to interpolate.
func TransformVertex(counter uint32, q Quad, e Extent) (position, color f32.Vec4) {
	p := q.Corner(CornerOf(counter))
	return ClipPosition(p, e), q.Color.Vec4()
}
