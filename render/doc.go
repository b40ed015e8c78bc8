// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes the quad pipeline on a wgpu/hal device.
//
// This package owns everything GPU-side: the WGSL shaders, pipeline and
// bind group creation, per-layer vertex buffers, render pass recording,
// and offscreen readback. The pure transform semantics live in the root
// qrend package; render uploads data in exactly the layouts the root
// package encodes.
//
// # Key Principle
//
// qrend RECEIVES a GPU device from the host application, it does NOT
// create its own. This follows the Vello/femtovg/Skia pattern where the
// rendering library is injected with GPU resources rather than managing
// them itself. [New] takes a hal.Device and hal.Queue directly;
// [NewFromProvider] unwraps them from a gpucontext provider such as a
// gogpu application context.
//
// # Usage
//
// Host-driven frame loop:
//
//	r, err := render.New(device, queue, 800, 600)
//	if err != nil { ... }
//	defer r.Close()
//
//	board, _ := r.CreateLayer("board")
//	hud, _ := r.CreateLayer("hud")
//
//	// Each frame:
//	board.SetQuads(boardQuads)
//	hud.Push(qrend.Quad{...})
//	if err := r.Prepare(); err != nil { ... }
//	img, err := r.RenderToImage()
//
// Hosts that own the render pass (drawing into their own surface) call
// [Renderer.RecordDraws] inside their pass instead of RenderToImage.
//
// # Input Modes
//
// The pipeline runs in one of two modes, chosen at construction:
//
//   - [qrend.InputModeCorners] (default): the CPU expands each quad into
//     six corner vertices with u32 pixel positions; the shader only maps
//     pixels to NDC.
//   - [qrend.InputModeRects]: each quad is one instance carrying the rect
//     as four f32 values; the shader expands corners from its corner
//     table using the vertex index.
//
// Both modes produce identical coverage for the same quads.
//
// # Thread Safety
//
// Renderer is NOT thread-safe. Use it from a single goroutine, or apply
// external synchronization.
package render
