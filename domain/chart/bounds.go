package chart

import "math"

// Fractions applied when deriving bounds from data.
const (
	// AxisPadding expands line and scatter bounds on both ends of each axis.
	AxisPadding = 0.05

	// BarHeadroom scales the tallest bar so it does not touch the top edge.
	BarHeadroom = 1.1

	// degenerateSpan is the width given to an axis whose values are all equal.
	degenerateSpan = 1.0
)

// Bounds is a data-space bounding box.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// BoundsOf returns the smallest box containing every point.
// It returns the zero Bounds for an empty slice.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: points[0].X,
		MaxX: points[0].X,
		MinY: points[0].Y,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// XRange returns MaxX - MinX.
func (b Bounds) XRange() float64 {
	return b.MaxX - b.MinX
}

// YRange returns MaxY - MinY.
func (b Bounds) YRange() float64 {
	return b.MaxY - b.MinY
}

// IsDegenerate reports whether either axis has a zero range.
func (b Bounds) IsDegenerate() bool {
	return b.XRange() == 0 || b.YRange() == 0
}

// Widen gives every zero-range axis a unit span centred on its value, so the
// scaler never divides by zero. Values too large for a unit span to register
// get the nearest representable neighbours instead.
func (b Bounds) Widen() Bounds {
	b.MinX, b.MaxX = widenAxis(b.MinX, b.MaxX)
	b.MinY, b.MaxY = widenAxis(b.MinY, b.MaxY)
	return b
}

func widenAxis(lo, hi float64) (float64, float64) {
	if hi-lo != 0 {
		return lo, hi
	}
	lo, hi = lo-degenerateSpan/2, hi+degenerateSpan/2
	if lo == hi {
		lo, hi = math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(1))
	}
	return lo, hi
}

// Pad expands each axis by fraction of its range on both ends.
// A zero-range axis is left unchanged. Padded ends are clamped to the
// finite float64 range.
func (b Bounds) Pad(fraction float64) Bounds {
	b.MinX, b.MaxX = padAxis(b.MinX, b.MaxX, fraction)
	b.MinY, b.MaxY = padAxis(b.MinY, b.MaxY, fraction)
	return b
}

func padAxis(lo, hi, fraction float64) (float64, float64) {
	d := (hi/2 - lo/2) * (2 * fraction)
	return clampFinite(lo - d), clampFinite(hi + d)
}

func clampFinite(v float64) float64 {
	return math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, v))
}

// span returns where v falls between lo and hi as a fraction. Ranges wider
// than float64 can hold are measured at half scale.
func span(v, lo, hi float64) float64 {
	if r := hi - lo; !math.IsInf(r, 0) {
		return (v - lo) / r
	}
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

// PlotBounds returns the bounds used by line and scatter charts: the data
// box, widened when degenerate, then padded by AxisPadding.
func PlotBounds(points []Point) Bounds {
	return BoundsOf(points).Widen().Pad(AxisPadding)
}

// BarBounds returns the bounds used by bar charts: X spans one slot per
// point starting at zero, Y spans from zero to BarHeadroom times the
// tallest value. When no value is positive the Y span falls back to [0, 1].
func BarBounds(points []Point) Bounds {
	b := Bounds{MinX: 0, MaxX: float64(len(points)), MinY: 0}
	if len(points) == 0 {
		return b
	}
	maxY := points[0].Y
	for _, p := range points[1:] {
		maxY = math.Max(maxY, p.Y)
	}
	b.MaxY = clampFinite(maxY * BarHeadroom)
	if b.MaxY <= 0 {
		b.MaxY = degenerateSpan
	}
	return b
}
