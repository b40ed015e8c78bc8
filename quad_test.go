package qrend

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestQuad_Corners(t *testing.T) {
	q := Quad{X: 100, Y: 50, W: 200, H: 80}

	tests := []struct {
		index CornerIndex
		want  f32.Vec2
	}{
		{TopLeft, f32.Vec2{100, 50}},
		{TopRight, f32.Vec2{300, 50}},
		{BottomLeft, f32.Vec2{100, 130}},
		{BottomRight, f32.Vec2{300, 130}},
	}

	for _, tt := range tests {
		t.Run(tt.index.String(), func(t *testing.T) {
			if got := q.Corner(tt.index); got != tt.want {
				t.Errorf("Corner(%v) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}

	corners := q.Corners()
	for i, tt := range tests {
		if corners[i] != tt.want {
			t.Errorf("Corners()[%d] = %v, want %v", i, corners[i], tt.want)
		}
	}
}

func TestQuad_CornerZeroSize(t *testing.T) {
	// A zero-size quad collapses all corners onto its origin.
	q := Quad{X: 40, Y: 60}
	for i := TopLeft; i <= BottomRight; i++ {
		if got := q.Corner(i); got != (f32.Vec2{40, 60}) {
			t.Errorf("Corner(%v) = %v, want {40 60}", i, got)
		}
	}
}

func TestCornerOf_Cycles(t *testing.T) {
	want := []CornerIndex{TopLeft, TopRight, BottomLeft, BottomRight}
	for counter := uint32(0); counter < 12; counter++ {
		if got := CornerOf(counter); got != want[counter%4] {
			t.Errorf("CornerOf(%d) = %v, want %v", counter, got, want[counter%4])
		}
	}
}

func TestCornerOf_LargeCounter(t *testing.T) {
	// The counter wraps by modulo, so arbitrarily large values stay valid.
	if got := CornerOf(4_000_000_001); got != TopRight {
		t.Errorf("CornerOf(4000000001) = %v, want TopRight", got)
	}
}

func TestCornerIndex_Offset(t *testing.T) {
	tests := []struct {
		index CornerIndex
		want  f32.Vec2
	}{
		{TopLeft, f32.Vec2{0, 0}},
		{TopRight, f32.Vec2{1, 0}},
		{BottomLeft, f32.Vec2{0, 1}},
		{BottomRight, f32.Vec2{1, 1}},
	}
	for _, tt := range tests {
		if got := tt.index.Offset(); got != tt.want {
			t.Errorf("Offset(%v) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestCornerIndex_OffsetMasked(t *testing.T) {
	// Out-of-range indices wrap by masking instead of panicking.
	for i := CornerIndex(4); i < 8; i++ {
		if got, want := i.Offset(), (i - 4).Offset(); got != want {
			t.Errorf("Offset(%d) = %v, want %v", i, got, want)
		}
	}
	q := Quad{X: 1, Y: 2, W: 3, H: 4}
	if got, want := q.Corner(7), q.Corner(BottomRight); got != want {
		t.Errorf("Corner(7) = %v, want %v", got, want)
	}
}

func TestCornerIndex_String(t *testing.T) {
	tests := []struct {
		index CornerIndex
		want  string
	}{
		{TopLeft, "TopLeft"},
		{TopRight, "TopRight"},
		{BottomLeft, "BottomLeft"},
		{BottomRight, "BottomRight"},
		{CornerIndex(5), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.index.String(); got != tt.want {
			t.Errorf("CornerIndex(%d).String() = %q, want %q", int(tt.index), got, tt.want)
		}
	}
}
