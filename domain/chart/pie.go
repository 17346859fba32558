package chart

import "math"

const (
	fullCircle = 360.0
	halfCircle = 180.0
	deg2rad    = math.Pi / halfCircle
)

// Slice is one pie wedge. Angles are in degrees, measured clockwise on the
// canvas starting from the positive X axis.
type Slice struct {
	Index int
	Value float64
	Share float64
	Start float64
	Sweep float64
}

// Slices computes the wedges for values. The first wedge starts at
// PieStartDeg (12 o'clock) and each sweep is its share of 360 degrees.
// Negative values and non-positive totals are rejected. Shares are computed
// relative to the largest value so the total cannot overflow.
func Slices(values []float64) ([]Slice, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	var largest float64
	for _, v := range values {
		if v < 0 {
			return nil, ErrNegativeValue
		}
		largest = math.Max(largest, v)
	}
	if largest <= 0 {
		return nil, ErrNonPositiveTotal
	}
	var total float64
	for _, v := range values {
		total += v / largest
	}

	slices := make([]Slice, len(values))
	angle := PieStartDeg
	for i, v := range values {
		share := v / largest / total
		sweep := share * fullCircle
		slices[i] = Slice{
			Index: i,
			Value: v,
			Share: share,
			Start: angle,
			Sweep: sweep,
		}
		angle += sweep
	}
	return slices, nil
}

// End returns the angle at which the wedge ends.
func (s Slice) End() float64 {
	return s.Start + s.Sweep
}

// Bisector returns the angle halfway through the wedge.
func (s Slice) Bisector() float64 {
	return s.Start + s.Sweep/2
}

// LargeArc reports whether the wedge needs the SVG large-arc flag.
func (s Slice) LargeArc() bool {
	return s.Sweep > halfCircle
}

// IsFull reports whether the wedge covers the whole circle.
func (s Slice) IsFull() bool {
	return s.Share >= 1
}

// Percent returns the share as an integer percentage, truncated.
func (s Slice) Percent() int {
	return int(s.Share * 100)
}

// ArcPoints returns the points where the wedge meets the circle.
func (s Slice) ArcPoints(cx, cy, radius float64) (Point, Point) {
	return PolarPoint(cx, cy, radius, s.Start), PolarPoint(cx, cy, radius, s.End())
}

// LabelPoint returns where the percentage label is drawn.
func (s Slice) LabelPoint(cx, cy, radius float64) Point {
	return PolarPoint(cx, cy, radius*PieLabelRatio, s.Bisector())
}

// PolarPoint converts an angle in degrees and a radius around (cx, cy) into
// canvas coordinates.
func PolarPoint(cx, cy, radius, degrees float64) Point {
	rad := degrees * deg2rad
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}
