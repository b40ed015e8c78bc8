package qrend

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

const ndcTolerance = 1e-5

func near(got, want float32) bool {
	return math.Abs(float64(got-want)) <= ndcTolerance
}

func TestToNDC_KnownValues(t *testing.T) {
	e := FloatExtent(800, 600)

	tests := []struct {
		name string
		p    f32.Vec2
		want f32.Vec2
	}{
		{"interior point", f32.Vec2{100, 50}, f32.Vec2{-0.75, 0.8333333}},
		{"origin", f32.Vec2{0, 0}, f32.Vec2{-1, 1}},
		{"far corner", f32.Vec2{800, 600}, f32.Vec2{1, -1}},
		{"center", f32.Vec2{400, 300}, f32.Vec2{0, 0}},
		{"top edge midpoint", f32.Vec2{400, 0}, f32.Vec2{0, 1}},
		{"left edge midpoint", f32.Vec2{0, 300}, f32.Vec2{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNDC(tt.p, e)
			if !near(got[0], tt.want[0]) || !near(got[1], tt.want[1]) {
				t.Errorf("ToNDC(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestToNDC_IntegerExtentMatchesFloat(t *testing.T) {
	// The two uniform units describe the same viewport, so the mapping
	// must agree once the integer extent is widened to f32.
	p := f32.Vec2{123, 456}
	a := ToNDC(p, FloatExtent(1920, 1080))
	b := ToNDC(p, IntegerExtent(1920, 1080))
	if a != b {
		t.Errorf("float extent %v != integer extent %v", a, b)
	}
}

func TestToNDC_YFlip(t *testing.T) {
	e := FloatExtent(800, 600)

	// Pixel y grows downward, NDC y grows upward.
	top := ToNDC(f32.Vec2{0, 100}, e)
	bottom := ToNDC(f32.Vec2{0, 500}, e)
	if top[1] <= bottom[1] {
		t.Errorf("y flip broken: pixel y=100 -> %v, pixel y=500 -> %v", top[1], bottom[1])
	}

	// X keeps its direction.
	left := ToNDC(f32.Vec2{100, 0}, e)
	right := ToNDC(f32.Vec2{500, 0}, e)
	if left[0] >= right[0] {
		t.Errorf("x direction broken: pixel x=100 -> %v, pixel x=500 -> %v", left[0], right[0])
	}
}

func TestToNDC_OutsideViewport(t *testing.T) {
	// Points outside the viewport map outside the [-1, 1] cube but stay
	// finite. Clipping is the rasterizer's job.
	e := FloatExtent(800, 600)
	got := ToNDC(f32.Vec2{1600, -600}, e)
	if !near(got[0], 3) || !near(got[1], 3) {
		t.Errorf("ToNDC(1600, -600) = %v, want (3, 3)", got)
	}
}

func TestToNDC_ZeroExtent(t *testing.T) {
	// Division by a zero extent follows IEEE 754: nonzero/0 gives an
	// infinity, 0/0 gives NaN. No panic, no clamping.
	e := FloatExtent(0, 0)

	got := ToNDC(f32.Vec2{100, 50}, e)
	if !math.IsInf(float64(got[0]), 1) {
		t.Errorf("x = %v, want +Inf", got[0])
	}
	if !math.IsInf(float64(got[1]), -1) {
		t.Errorf("y = %v, want -Inf", got[1])
	}

	origin := ToNDC(f32.Vec2{0, 0}, e)
	if !math.IsNaN(float64(origin[0])) {
		t.Errorf("x at origin = %v, want NaN", origin[0])
	}
	if !math.IsNaN(float64(origin[1])) {
		t.Errorf("y at origin = %v, want NaN", origin[1])
	}
}

func TestClipPosition(t *testing.T) {
	e := FloatExtent(800, 600)
	got := ClipPosition(f32.Vec2{100, 50}, e)

	if !near(got[0], -0.75) || !near(got[1], 0.8333333) {
		t.Errorf("ClipPosition xy = (%v, %v)", got[0], got[1])
	}
	if got[2] != 0 || got[3] != 1 {
		t.Errorf("ClipPosition zw = (%v, %v), want (0, 1)", got[2], got[3])
	}
}

func TestFragmentColor_Passthrough(t *testing.T) {
	colors := []f32.Vec4{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0.25, 0.5, 0.75, 0.125},
	}
	for _, c := range colors {
		if got := FragmentColor(c); got != c {
			t.Errorf("FragmentColor(%v) = %v", c, got)
		}
	}
}

func TestTransformVertex(t *testing.T) {
	q := Quad{X: 100, Y: 50, W: 200, H: 80, Color: RGBA(0.1, 0.2, 0.3, 0.4)}
	e := FloatExtent(800, 600)

	// Counter 3 selects the bottom-right corner: (300, 130).
	pos, col := TransformVertex(3, q, e)

	wantPos := ClipPosition(f32.Vec2{300, 130}, e)
	if pos != wantPos {
		t.Errorf("position = %v, want %v", pos, wantPos)
	}
	if col != q.Color.Vec4() {
		t.Errorf("color = %v, want %v", col, q.Color.Vec4())
	}

	// Counter 4 wraps back to the top-left corner.
	pos, _ = TransformVertex(4, q, e)
	if pos != ClipPosition(f32.Vec2{100, 50}, e) {
		t.Errorf("counter 4 position = %v, want top-left", pos)
	}
}

func TestTransformVertex_ColorIndependence(t *testing.T) {
	// Same geometry with different colors differs only in color.
	e := FloatExtent(800, 600)
	a := Quad{X: 10, Y: 20, W: 30, H: 40, Color: Red}
	b := Quad{X: 10, Y: 20, W: 30, H: 40, Color: Blue}

	for counter := uint32(0); counter < 4; counter++ {
		posA, colA := TransformVertex(counter, a, e)
		posB, colB := TransformVertex(counter, b, e)
		if posA != posB {
			t.Errorf("counter %d: positions diverged: %v vs %v", counter, posA, posB)
		}
		if colA == colB {
			t.Errorf("counter %d: colors did not differ", counter)
		}
	}
}

func TestToNDC_TwoStepEquivalence(t *testing.T) {
	// The single-expression map must match the two-step form (scale to
	// [-1,1], then negate y) bit for bit. IEEE negation is exact and
	// round-to-nearest is symmetric under it.
	e := FloatExtent(800, 600)
	points := []f32.Vec2{
		{0, 0}, {1, 1}, {100, 50}, {400, 300}, {799, 599}, {800, 600},
		{0.5, 0.25}, {333.33, 123.45},
	}
	for _, p := range points {
		got := ToNDC(p, e)
		twoStepY := -(p[1]/e.Height()*2 - 1)
		if math.Float32bits(got[1]) != math.Float32bits(twoStepY) {
			t.Errorf("ToNDC(%v).y = %b, two-step form = %b", p,
				math.Float32bits(got[1]), math.Float32bits(twoStepY))
		}
	}
}

func BenchmarkTransformVertex(b *testing.B) {
	q := Quad{X: 100, Y: 50, W: 200, H: 80, Color: Red}
	e := FloatExtent(800, 600)
	b.ReportAllocs()
	var counter uint32
	for b.Loop() {
		TransformVertex(counter, q, e)
		counter++
	}
}
