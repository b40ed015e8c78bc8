package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/qrend"
)

// quadPipeline holds the GPU objects for one input mode's quad pipeline:
// shader module, layouts, and the render pipeline itself.
//
// Blending is disabled on the color target. Quads write their color as-is
// (source replaces destination), so draw order inside a pass is the only
// thing deciding overlap.
type quadPipeline struct {
	device hal.Device

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	// Compiled SPIR-V (cached for verification).
	spirvCode []uint32

	mode   qrend.InputMode
	format gputypes.TextureFormat
}

// newQuadPipeline compiles the mode's shader and builds the full pipeline
// for the given color target format. On error, any partially created
// resources are released.
func newQuadPipeline(device hal.Device, mode qrend.InputMode, format gputypes.TextureFormat) (*quadPipeline, error) {
	p := &quadPipeline{device: device, mode: mode, format: format}
	if err := p.create(); err != nil {
		p.destroy()
		return nil, err
	}
	return p, nil
}

func (p *quadPipeline) create() error {
	source := ShaderSource(p.mode)
	if source == "" {
		return fmt.Errorf("%s shader source is empty", p.mode)
	}
	label := "quad_corners"
	if p.mode == qrend.InputModeRects {
		label = "quad_rects"
	}

	// Precompile with naga so a broken shader fails here, with the
	// shader named, rather than inside the backend.
	code, err := compileSPIRV(label, source)
	switch {
	case err == nil:
		p.spirvCode = code
	case nagaLimitation(err):
		slogger().Debug("naga precompile skipped", "shader", label, "reason", err)
	default:
		return err
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_shader",
		Source: hal.ShaderSource{WGSL: source},
	})
	if err != nil {
		return fmt.Errorf("compile %s shader: %w", p.mode, err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "quad_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create quad uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "quad_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(p.mode),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: topology(p.mode),
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create %s pipeline: %w", p.mode, err)
	}
	p.pipeline = pipeline

	return nil
}

// destroy releases all pipeline resources in reverse creation order.
// Safe to call multiple times.
func (p *quadPipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// vertexLayout returns the vertex buffer layout for the given input mode.
//
// Corner stream, stride 24, stepped per vertex:
//
//	color    (vec4<f32>) = 16 bytes (location 0)
//	position (vec2<u32>) = 8 bytes  (location 1)
//
// Rect stream, stride 32, stepped per instance:
//
//	color (vec4<f32>) = 16 bytes (location 0)
//	rect  (vec4<f32>) = 16 bytes (location 1)
func vertexLayout(mode qrend.InputMode) []gputypes.VertexBufferLayout {
	if mode == qrend.InputModeRects {
		return []gputypes.VertexBufferLayout{
			{
				ArrayStride: qrend.RectInstanceStride,
				StepMode:    gputypes.VertexStepModeInstance,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // color
					{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1}, // rect
				},
			},
		}
	}
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: qrend.CornerVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0}, // color
				{Format: gputypes.VertexFormatUint32x2, Offset: 16, ShaderLocation: 1}, // position
			},
		},
	}
}

// topology returns the primitive topology for the given input mode:
// a triangle list for the pre-expanded corner stream, a 4-vertex
// triangle strip per instance for the rect stream.
func topology(mode qrend.InputMode) gputypes.PrimitiveTopology {
	if mode == qrend.InputModeRects {
		return gputypes.PrimitiveTopologyTriangleStrip
	}
	return gputypes.PrimitiveTopologyTriangleList
}
