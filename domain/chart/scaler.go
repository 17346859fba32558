package chart

// Scaler maps data-space coordinates onto the padded canvas interior.
// Canvas Y grows downward, so Y is flipped.
type Scaler struct {
	bounds      Bounds
	left        float64
	bottom      float64
	innerWidth  float64
	innerHeight float64
}

// NewScaler creates a scaler for the given bounds and canvas configuration.
// Callers are expected to pass bounds from PlotBounds or BarBounds, which
// never have a zero range.
func NewScaler(b Bounds, cfg Config) Scaler {
	return Scaler{
		bounds:      b,
		left:        float64(cfg.Padding),
		bottom:      float64(cfg.Height - cfg.Padding),
		innerWidth:  float64(cfg.InnerWidth()),
		innerHeight: float64(cfg.InnerHeight()),
	}
}

// Bounds returns the data-space bounds of the scaler.
func (s Scaler) Bounds() Bounds {
	return s.bounds
}

// X maps a data X value to a canvas X coordinate.
func (s Scaler) X(x float64) float64 {
	return s.left + span(x, s.bounds.MinX, s.bounds.MaxX)*s.innerWidth
}

// Y maps a data Y value to a canvas Y coordinate.
func (s Scaler) Y(y float64) float64 {
	return s.bottom - span(y, s.bounds.MinY, s.bounds.MaxY)*s.innerHeight
}

// Point maps a data point to canvas coordinates.
func (s Scaler) Point(p Point) (float64, float64) {
	return s.X(p.X), s.Y(p.Y)
}
