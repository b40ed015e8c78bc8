package qrend

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ExtentUnit selects the scalar type an Extent carries on the wire.
// The two input modes bind different uniform layouts: rect-instanced
// shading reads the viewport as two f32 values, corner-stream shading
// reads it as two u32 values. Both layouts are exactly 8 bytes.
type ExtentUnit int

const (
	// UnitFloatPixels encodes the extent as two float32 values.
	UnitFloatPixels ExtentUnit = iota

	// UnitIntegerPixels encodes the extent as two uint32 values.
	UnitIntegerPixels
)

// String returns the unit name.
func (u ExtentUnit) String() string {
	switch u {
	case UnitFloatPixels:
		return "FloatPixels"
	case UnitIntegerPixels:
		return "IntegerPixels"
	default:
		return "Unknown"
	}
}

// Extent is a viewport size in pixels, tagged with its wire unit.
// The zero value is an invalid extent (0 x 0).
type Extent struct {
	fw, fh float32
	iw, ih uint32
	unit   ExtentUnit
}

// FloatExtent creates an extent carried as two float32 values.
func FloatExtent(w, h float32) Extent {
	return Extent{fw: w, fh: h, iw: u32FromF32(w), ih: u32FromF32(h), unit: UnitFloatPixels}
}

// IntegerExtent creates an extent carried as two uint32 values.
func IntegerExtent(w, h uint32) Extent {
	return Extent{fw: float32(w), fh: float32(h), iw: w, ih: h, unit: UnitIntegerPixels}
}

// u32FromF32 converts a float dimension to a whole pixel count.
// Negative and NaN values clamp to zero, fractional values round to nearest.
func u32FromF32(v float32) uint32 {
	if v != v || v <= 0 {
		return 0
	}
	return uint32(math.Round(float64(v)))
}

// Unit returns the wire unit the extent was created with.
func (e Extent) Unit() ExtentUnit { return e.unit }

// Width returns the width in pixels as a float32, regardless of unit.
func (e Extent) Width() float32 {
	if e.unit == UnitIntegerPixels {
		return float32(e.iw)
	}
	return e.fw
}

// Height returns the height in pixels as a float32, regardless of unit.
func (e Extent) Height() float32 {
	if e.unit == UnitIntegerPixels {
		return float32(e.ih)
	}
	return e.fh
}

// Pixels returns the extent as whole pixel counts, rounding fractional
// float dimensions to the nearest pixel. Texture allocation and
// readback use this regardless of the wire unit.
func (e Extent) Pixels() (w, h uint32) {
	return e.iw, e.ih
}

// Valid reports whether both dimensions are positive. Transforming with a
// zero-extent viewport divides by zero and propagates IEEE infinities
// through the NDC mapping; callers that want to reject that case check
// Valid first.
func (e Extent) Valid() bool {
	return e.Width() > 0 && e.Height() > 0
}

// String returns the extent as "WxH" in its wire unit.
func (e Extent) String() string {
	if e.unit == UnitIntegerPixels {
		return fmt.Sprintf("%dx%d", e.iw, e.ih)
	}
	return fmt.Sprintf("%gx%g", e.fw, e.fh)
}

// Converted returns the extent re-tagged with the given unit, converting
// the stored dimensions. Converting to integer pixels rounds fractional
// float dimensions to the nearest whole pixel.
func (e Extent) Converted(unit ExtentUnit) Extent {
	if e.unit == unit {
		return e
	}
	if unit == UnitIntegerPixels {
		return IntegerExtent(u32FromF32(e.fw), u32FromF32(e.fh))
	}
	return FloatExtent(float32(e.iw), float32(e.ih))
}

// UniformByteSize is the size of the viewport uniform in bytes.
// Both wire units pack two 4-byte scalars with no padding.
const UniformByteSize = 8

// UniformBytes encodes the extent for upload to the viewport uniform
// buffer: width then height, little-endian, 8 bytes total. The scalar
// type follows the extent's unit.
func (e Extent) UniformBytes() [UniformByteSize]byte {
	var buf [UniformByteSize]byte
	switch e.unit {
	case UnitIntegerPixels:
		binary.LittleEndian.PutUint32(buf[0:4], e.iw)
		binary.LittleEndian.PutUint32(buf[4:8], e.ih)
	default:
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(e.fw))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(e.fh))
	}
	return buf
}
