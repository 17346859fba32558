package chart

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBoundsOf(t *testing.T) {
	t.Parallel()

	b := BoundsOf([]Point{{1, 5}, {-2, 3}, {4, -1}})
	want := Bounds{MinX: -2, MaxX: 4, MinY: -1, MaxY: 5}
	if b != want {
		t.Errorf("BoundsOf() = %+v, want %+v", b, want)
	}

	if got := BoundsOf(nil); got != (Bounds{}) {
		t.Errorf("BoundsOf(nil) = %+v, want zero", got)
	}
}

func TestBounds_Pad(t *testing.T) {
	t.Parallel()

	b := Bounds{MinX: 0, MaxX: 100, MinY: 10, MaxY: 30}.Pad(AxisPadding)
	if !approxEqual(b.MinX, -5) || !approxEqual(b.MaxX, 105) {
		t.Errorf("padded X = [%v, %v], want [-5, 105]", b.MinX, b.MaxX)
	}
	if !approxEqual(b.MinY, 9) || !approxEqual(b.MaxY, 31) {
		t.Errorf("padded Y = [%v, %v], want [9, 31]", b.MinY, b.MaxY)
	}

	flat := Bounds{MinX: 2, MaxX: 2, MinY: 0, MaxY: 1}.Pad(AxisPadding)
	if flat.MinX != 2 || flat.MaxX != 2 {
		t.Errorf("zero-range axis changed by Pad: [%v, %v]", flat.MinX, flat.MaxX)
	}
}

func TestBounds_Widen(t *testing.T) {
	t.Parallel()

	b := Bounds{MinX: 3, MaxX: 3, MinY: 7, MaxY: 7}
	if !b.IsDegenerate() {
		t.Fatal("expected degenerate bounds")
	}

	w := b.Widen()
	if w.IsDegenerate() {
		t.Fatalf("Widen() left degenerate bounds: %+v", w)
	}
	if !approxEqual(w.MinX, 2.5) || !approxEqual(w.MaxX, 3.5) {
		t.Errorf("widened X = [%v, %v], want [2.5, 3.5]", w.MinX, w.MaxX)
	}
	if !approxEqual(w.MinY, 6.5) || !approxEqual(w.MaxY, 7.5) {
		t.Errorf("widened Y = [%v, %v], want [6.5, 7.5]", w.MinY, w.MaxY)
	}

	ok := Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 2}
	if ok.Widen() != ok {
		t.Error("Widen() changed non-degenerate bounds")
	}
}

func TestPlotBounds_Extremes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []Point
	}{
		{"range overflows", []Point{{-1e308, 0}, {1e308, 1}}},
		{"at the float limit", []Point{{-math.MaxFloat64, -math.MaxFloat64}, {math.MaxFloat64, math.MaxFloat64}}},
		{"flat and huge", []Point{{1e300, 1e300}, {1e300, 1e300}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := PlotBounds(tt.points)
			for _, v := range []float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("PlotBounds() = %+v, want finite", b)
				}
			}
			if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
				t.Errorf("PlotBounds() = %+v, want non-empty axes", b)
			}
		})
	}
}

func TestPlotBounds(t *testing.T) {
	t.Parallel()

	b := PlotBounds([]Point{{0, 0}, {1, 1}, {2, 4}})
	if !approxEqual(b.MinX, -0.1) || !approxEqual(b.MaxX, 2.1) {
		t.Errorf("X = [%v, %v], want [-0.1, 2.1]", b.MinX, b.MaxX)
	}
	if !approxEqual(b.MinY, -0.2) || !approxEqual(b.MaxY, 4.2) {
		t.Errorf("Y = [%v, %v], want [-0.2, 4.2]", b.MinY, b.MaxY)
	}
}

func TestBarBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []Point
		want   Bounds
	}{
		{"ascending", Indexed([]float64{10, 20, 30}), Bounds{0, 3, 0, 33}},
		{"all zero", Indexed([]float64{0, 0}), Bounds{0, 2, 0, 1}},
		{"all negative", Indexed([]float64{-3, -1}), Bounds{0, 2, 0, 1}},
		{"empty", nil, Bounds{}},
		{"headroom overflows", Indexed([]float64{math.MaxFloat64}), Bounds{0, 1, 0, math.MaxFloat64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BarBounds(tt.points)
			if !approxEqual(got.MinX, tt.want.MinX) || !approxEqual(got.MaxX, tt.want.MaxX) ||
				!approxEqual(got.MinY, tt.want.MinY) || !approxEqual(got.MaxY, tt.want.MaxY) {
				t.Errorf("BarBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
