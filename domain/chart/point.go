package chart

// Point is a data-space coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Indexed turns a flat value list into points whose X is the value's
// zero-based position.
func Indexed(values []float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: float64(i), Y: v}
	}
	return points
}
