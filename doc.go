// Package qrend renders axis-aligned colored rectangles ("quads") through
// a GPU rasterization pipeline.
//
// # Overview
//
// qrend is a small quad renderer for the GoGPU ecosystem. Its core is the
// per-vertex coordinate transform: a rectangle described in pixel space
// (position, size, color) is expanded into four corners and mapped into
// normalized device coordinates (NDC) for the rasterizer, with the vertical
// axis flipped (pixel y grows downward, NDC y grows upward). The root
// package holds this transform as pure Go functions mirroring the WGSL
// shaders, plus the quad, color, layer, and viewport types shared with the
// GPU side.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/qrend"
//	    "github.com/gogpu/qrend/render"
//	)
//
//	// Host provides the wgpu/hal device and queue.
//	r, err := render.New(device, queue, 800, 600)
//	if err != nil {
//	    // ...
//	}
//	defer r.Close()
//
//	layer, _ := r.CreateLayer("ui")
//	layer.Push(qrend.Quad{X: 100, Y: 50, W: 200, H: 80, Color: qrend.Red})
//
//	img, err := r.RenderToImage()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Quad, Color, CornerIndex, Extent, Layer, Palette, and the
//     pure transform reference (corner selection, NDC mapping, color
//     passthrough)
//   - render: WGSL shaders, pipeline and bind group setup, per-layer vertex
//     buffers, render pass recording, offscreen readback
//   - frame: fixed-rate tick/render timer for hosts that drive their own
//     loop
//
// # Coordinate System
//
// Input geometry uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The vertex transform maps these into NDC, where y increases upward.
// For a viewport of W x H pixels:
//
//	ndc_x = (px / W) * 2 - 1
//	ndc_y = 1 - (py / H) * 2
//
// # Logging
//
// qrend produces no log output by default. Call [SetLogger] to enable
// structured logging via log/slog; sub-packages share the same logger.
package qrend

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
