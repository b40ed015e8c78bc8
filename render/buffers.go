package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/qrend"
)

// layerState holds the GPU-side state of one layer: its vertex buffer,
// the staging scratch used to encode quads, and the layer version last
// uploaded. Prepare re-encodes and re-uploads only when the layer
// version moved.
type layerState struct {
	layer *qrend.Layer

	vertBuf hal.Buffer
	byteCap int // allocated size of vertBuf
	byteLen int // valid bytes this frame

	quadCount int    // quads encoded in vertBuf
	uploaded  uint64 // layer version last uploaded
	hasUpload bool   // false until the first upload

	staging []byte // reused CPU-side encode scratch
}

// sync re-encodes the layer's quads and uploads them to the vertex
// buffer if the layer changed since the last upload. The buffer grows
// geometrically when the encoded data outgrows it; it never shrinks.
func (s *layerState) sync(device hal.Device, queue hal.Queue, mode qrend.InputMode) error {
	if s.hasUpload && s.layer.Version() == s.uploaded {
		return nil
	}

	s.staging = s.layer.AppendVertices(s.staging[:0], mode)
	s.byteLen = len(s.staging)
	s.quadCount = s.layer.Len()

	if s.byteLen > 0 {
		if s.byteLen > s.byteCap {
			newCap := s.byteCap * 2
			if newCap < s.byteLen {
				newCap = s.byteLen
			}
			if s.vertBuf != nil {
				device.DestroyBuffer(s.vertBuf)
				s.vertBuf = nil
			}
			buf, err := device.CreateBuffer(&hal.BufferDescriptor{
				Label: "quad_verts_" + s.layer.Label(),
				Size:  uint64(newCap),
				Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
			})
			if err != nil {
				return fmt.Errorf("create vertex buffer for layer %q: %w", s.layer.Label(), err)
			}
			s.vertBuf = buf
			s.byteCap = newCap
			slogger().Debug("vertex buffer grown",
				"layer", s.layer.Label(), "bytes", newCap)
		}
		queue.WriteBuffer(s.vertBuf, 0, s.staging)
	}

	s.uploaded = s.layer.Version()
	s.hasUpload = true
	return nil
}

// destroy releases the layer's GPU buffer. Safe to call multiple times.
func (s *layerState) destroy(device hal.Device) {
	if s.vertBuf != nil {
		device.DestroyBuffer(s.vertBuf)
		s.vertBuf = nil
	}
	s.byteCap = 0
	s.byteLen = 0
	s.quadCount = 0
	s.hasUpload = false
}

// createAndUploadBuffer creates a GPU buffer sized for data and writes
// data into it.
func createAndUploadBuffer(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create buffer %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
