package chart

import (
	"math"
	"testing"
)

func TestScaler_Corners(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	s := NewScaler(Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 100}, cfg)

	if got := s.X(0); got != 60 {
		t.Errorf("X(min) = %v, want 60", got)
	}
	if got := s.X(10); got != 740 {
		t.Errorf("X(max) = %v, want 740", got)
	}
	if got := s.Y(0); got != 540 {
		t.Errorf("Y(min) = %v, want 540", got)
	}
	if got := s.Y(100); got != 60 {
		t.Errorf("Y(max) = %v, want 60", got)
	}
	if got := s.X(5); got != 400 {
		t.Errorf("X(mid) = %v, want 400", got)
	}
}

func TestScaler_Monotonic(t *testing.T) {
	t.Parallel()

	s := NewScaler(PlotBounds([]Point{{-50, -3}, {120, 9}}), DefaultConfig())
	inputs := []float64{-50, -10, 0, 0.5, 33, 120}
	for i := 1; i < len(inputs); i++ {
		if s.X(inputs[i-1]) > s.X(inputs[i]) {
			t.Errorf("X not monotonic: X(%v)=%v > X(%v)=%v",
				inputs[i-1], s.X(inputs[i-1]), inputs[i], s.X(inputs[i]))
		}
		// Y is flipped: larger data values sit higher on the canvas.
		if s.Y(inputs[i-1]) < s.Y(inputs[i]) {
			t.Errorf("Y not inverted-monotonic at %v", inputs[i])
		}
	}
}

func TestScaler_DegenerateInputStaysFinite(t *testing.T) {
	t.Parallel()

	s := NewScaler(PlotBounds([]Point{{2, 5}, {2, 5}}), DefaultConfig())
	x, y := s.Point(Pt(2, 5))
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("Point() = (%v, %v), want finite", x, y)
	}
	if !approxEqual(x, 400) || !approxEqual(y, 300) {
		t.Errorf("Point() = (%v, %v), want centre (400, 300)", x, y)
	}
}

func TestScaler_HugeRangeStaysFinite(t *testing.T) {
	t.Parallel()

	points := []Point{{-1e308, 0}, {1e308, 1}, {0, 0.5}}
	s := NewScaler(PlotBounds(points), DefaultConfig())
	for _, p := range points {
		x, y := s.Point(p)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("Point(%v) = (%v, %v), want finite", p, x, y)
		}
	}
	if x := s.X(0); !approxEqual(x, 400) {
		t.Errorf("X(0) = %v, want centre 400", x)
	}
	if s.X(-1e308) >= s.X(1e308) {
		t.Error("X not monotonic across a huge range")
	}
}

func TestScaler_CustomCanvas(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Padding = 200, 100, 10
	s := NewScaler(Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, cfg)

	if got := s.X(1); got != 190 {
		t.Errorf("X(1) = %v, want 190", got)
	}
	if got := s.Y(1); got != 10 {
		t.Errorf("Y(1) = %v, want 10", got)
	}
}
