// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

func TestDeviceHandleAlias(t *testing.T) {
	// DeviceHandle should be an alias for gpucontext.DeviceProvider
	// This test verifies type compatibility at compile time
	handle := NullDeviceHandle{}

	var dh DeviceHandle = handle
	if dh.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}

	acceptProvider := func(_ gpucontext.DeviceProvider) {}
	acceptProvider(handle)
}

// nilHALProvider exposes the HAL methods but returns nothing useful.
type nilHALProvider struct{}

func (nilHALProvider) HalDevice() any { return nil }
func (nilHALProvider) HalQueue() any  { return nil }

func TestUnwrapHAL(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := &testProvider{device: device, queue: queue}
	gotDevice, gotQueue, err := unwrapHAL(p)
	if err != nil {
		t.Fatalf("unwrapHAL() error = %v", err)
	}
	if gotDevice == nil || gotQueue == nil {
		t.Error("unwrapHAL() returned nil device or queue")
	}
}

func TestUnwrapHALErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider any
	}{
		{"no HAL methods", NullDeviceHandle{}},
		{"nil HAL values", nilHALProvider{}},
		{"nil provider", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := unwrapHAL(tt.provider)
			if !errors.Is(err, ErrNoDevice) {
				t.Errorf("unwrapHAL(%v) error = %v, want ErrNoDevice", tt.provider, err)
			}
		})
	}
}

func TestSurfaceFormat(t *testing.T) {
	if got := surfaceFormat(NullDeviceHandle{}); got != gputypes.TextureFormatUndefined {
		t.Errorf("surfaceFormat(NullDeviceHandle) = %v, want Undefined", got)
	}
	if got := surfaceFormat(struct{}{}); got != gputypes.TextureFormatUndefined {
		t.Errorf("surfaceFormat(struct{}) = %v, want Undefined", got)
	}
	p := &testProvider{format: gputypes.TextureFormatBGRA8Unorm}
	if got := surfaceFormat(p); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("surfaceFormat(provider) = %v, want BGRA8Unorm", got)
	}
}
