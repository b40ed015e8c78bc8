// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/qrend"
)

// Rendering errors.
var (
	// ErrNoDevice is returned when no usable GPU device or queue is
	// available, or when a device provider does not expose HAL types.
	ErrNoDevice = errors.New("render: no usable GPU device")

	// ErrClosed is returned when calling an operation on a closed
	// renderer.
	ErrClosed = errors.New("render: renderer is closed")

	// ErrInvalidExtent is returned when a viewport dimension is zero
	// or negative.
	ErrInvalidExtent = errors.New("render: invalid viewport extent")

	// ErrLayerExists is returned when creating a layer whose label is
	// already in use.
	ErrLayerExists = errors.New("render: layer already exists")

	// ErrNoLayer is returned when a named layer does not exist.
	ErrNoLayer = errors.New("render: no such layer")

	// ErrUnsupportedFormat is returned by RenderToImage when the color
	// target format has no CPU decoding path.
	ErrUnsupportedFormat = errors.New("render: unsupported texture format for readback")
)

// Option configures a Renderer during creation.
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	mode      qrend.InputMode
	format    gputypes.TextureFormat
	formatSet bool
	clear     qrend.Color
}

// defaultOptions returns the default renderer options: corner-stream
// input, a BGRA8 color target, and a black clear color.
func defaultOptions() options {
	return options{
		mode:   qrend.InputModeCorners,
		format: gputypes.TextureFormatBGRA8Unorm,
		clear:  qrend.Black,
	}
}

// WithInputMode selects how quads are fed to the GPU. The default is
// InputModeCorners. See the qrend.InputMode documentation for the
// trade-offs between the two modes.
func WithInputMode(mode qrend.InputMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithFormat sets the color target format the pipeline renders to.
// The default is BGRA8Unorm; when constructing from a provider via
// NewFromProvider, the provider's surface format wins over the
// default.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = format
		o.formatSet = true
	}
}

// WithClearColor sets the color the viewport is cleared to before
// quads are drawn. The default is black.
func WithClearColor(c qrend.Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// Renderer draws layers of colored quads through a HAL render
// pipeline. It owns the pipeline, the viewport uniform, and one vertex
// buffer per layer; it never owns the device, which stays under the
// caller's control.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	mode   qrend.InputMode
	format gputypes.TextureFormat
	clear  qrend.Color
	extent qrend.Extent

	pipeline   *quadPipeline
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup

	layers []*layerState          // draw order
	index  map[string]*layerState // by label

	closed bool
}

// New creates a Renderer on the given device and queue with a viewport
// of width x height pixels. The device and queue are borrowed, not
// owned; Close never destroys them.
func New(device hal.Device, queue hal.Queue, width, height int, opts ...Option) (*Renderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		device: device,
		queue:  queue,
		mode:   o.mode,
		format: o.format,
		clear:  o.clear,
		extent: extentFor(o.mode, width, height),
		index:  make(map[string]*layerState),
	}

	pipeline, err := newQuadPipeline(device, r.mode, r.format)
	if err != nil {
		return nil, err
	}
	r.pipeline = pipeline

	if err := r.createViewportBinding(); err != nil {
		r.pipeline.destroy()
		return nil, err
	}

	slogger().Debug("renderer created",
		"mode", r.mode.String(), "extent", r.extent.String())
	return r, nil
}

// NewFromProvider creates a Renderer from a device provider such as a
// gpucontext window context. The provider must expose HalDevice and
// HalQueue; its surface format becomes the render target format unless
// WithFormat overrides it.
func NewFromProvider(provider any, width, height int, opts ...Option) (*Renderer, error) {
	device, queue, err := unwrapHAL(provider)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.formatSet {
		if format := surfaceFormat(provider); format != gputypes.TextureFormatUndefined {
			opts = append(opts, WithFormat(format))
		}
	}
	return New(device, queue, width, height, opts...)
}

// extentFor builds the viewport extent in the mode's uniform variant.
func extentFor(mode qrend.InputMode, width, height int) qrend.Extent {
	if mode.ExtentUnit() == qrend.UnitIntegerPixels {
		return qrend.IntegerExtent(uint32(width), uint32(height))
	}
	return qrend.FloatExtent(float32(width), float32(height))
}

// createViewportBinding creates the 8-byte viewport uniform buffer and
// the bind group exposing it to the shaders at group 0, binding 0.
func (r *Renderer) createViewportBinding() error {
	data := r.extent.UniformBytes()
	buf, err := createAndUploadBuffer(r.device, r.queue, "quad_viewport", data[:],
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create viewport uniform: %w", err)
	}
	r.uniformBuf = buf

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "quad_viewport_bind",
		Layout: r.pipeline.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: r.uniformBuf.NativeHandle(), Offset: 0, Size: qrend.UniformByteSize,
			}},
		},
	})
	if err != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
		return fmt.Errorf("create viewport bind group: %w", err)
	}
	r.bindGroup = bindGroup
	return nil
}

// Mode returns the renderer's input mode.
func (r *Renderer) Mode() qrend.InputMode { return r.mode }

// Format returns the color target format the pipeline renders to.
func (r *Renderer) Format() gputypes.TextureFormat { return r.format }

// Extent returns the current viewport extent.
func (r *Renderer) Extent() qrend.Extent { return r.extent }

// ClearColor returns the color the viewport is cleared to.
func (r *Renderer) ClearColor() qrend.Color { return r.clear }

// SetClearColor changes the color the viewport is cleared to. It takes
// effect on the next render.
func (r *Renderer) SetClearColor(c qrend.Color) { r.clear = c }

// CreateLayer creates an empty visible layer and appends it to the
// draw order. Layers created later draw on top of layers created
// earlier.
func (r *Renderer) CreateLayer(label string) (*qrend.Layer, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if _, ok := r.index[label]; ok {
		return nil, fmt.Errorf("%w: %q", ErrLayerExists, label)
	}
	state := &layerState{layer: qrend.NewLayer(label)}
	r.layers = append(r.layers, state)
	r.index[label] = state
	return state.layer, nil
}

// Layer returns the layer with the given label, or nil if no such
// layer exists.
func (r *Renderer) Layer(label string) *qrend.Layer {
	state, ok := r.index[label]
	if !ok {
		return nil
	}
	return state.layer
}

// RemoveLayer removes the layer with the given label and releases its
// GPU buffer.
func (r *Renderer) RemoveLayer(label string) error {
	if r.closed {
		return ErrClosed
	}
	state, ok := r.index[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoLayer, label)
	}
	delete(r.index, label)
	for i, s := range r.layers {
		if s == state {
			r.layers = append(r.layers[:i], r.layers[i+1:]...)
			break
		}
	}
	state.destroy(r.device)
	return nil
}

// Layers returns the layer labels in draw order.
func (r *Renderer) Layers() []string {
	labels := make([]string, len(r.layers))
	for i, s := range r.layers {
		labels[i] = s.layer.Label()
	}
	return labels
}

// Prepare encodes and uploads vertex data for every layer that changed
// since the last call. Call it once per frame before recording draws.
func (r *Renderer) Prepare() error {
	if r.closed {
		return ErrClosed
	}
	for _, state := range r.layers {
		if err := state.sync(r.device, r.queue, r.mode); err != nil {
			return err
		}
	}
	return nil
}

// RecordDraws records the quad draw commands into an active render
// pass. The caller owns the pass; this makes the renderer composable
// with other draw recorders sharing the same pass.
//
// Prepare must have been called since the last layer change, otherwise
// stale vertex data is drawn.
func (r *Renderer) RecordDraws(pass hal.RenderPassEncoder) {
	if r.closed {
		return
	}
	pass.SetPipeline(r.pipeline.pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	for _, state := range r.layers {
		if !state.layer.Visible() || state.quadCount == 0 || state.vertBuf == nil {
			continue
		}
		pass.SetVertexBuffer(0, state.vertBuf, 0)
		if r.mode == qrend.InputModeRects {
			pass.Draw(qrend.RectVerticesPerInstance, uint32(state.quadCount), 0, 0)
		} else {
			pass.Draw(uint32(state.quadCount*qrend.VerticesPerQuad), 1, 0, 0)
		}
	}
}

// Resize updates the viewport extent and rewrites the viewport
// uniform. Quad pixel coordinates are unchanged; the same quads map to
// new normalized device coordinates on the next render.
func (r *Renderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidExtent, width, height)
	}
	extent := extentFor(r.mode, width, height)
	if extent == r.extent {
		return nil
	}
	r.extent = extent
	data := r.extent.UniformBytes()
	r.queue.WriteBuffer(r.uniformBuf, 0, data[:])
	slogger().Debug("viewport resized", "extent", r.extent.String())
	return nil
}

// Close releases all GPU resources owned by the renderer: layer vertex
// buffers, the viewport uniform and bind group, and the pipeline. The
// device and queue are left untouched. Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for _, state := range r.layers {
		state.destroy(r.device)
	}
	r.layers = nil
	r.index = nil
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	if r.pipeline != nil {
		r.pipeline.destroy()
		r.pipeline = nil
	}
	return nil
}
