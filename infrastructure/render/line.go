package render

import (
	"io"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

const pointRadius = 4

// Line draws a polyline through points in input order with a marker on each
// point.
func Line(w io.Writer, points []chart.Point, cfg chart.Config) error {
	if len(points) == 0 {
		return chart.ErrNoData
	}
	s := chart.NewScaler(chart.PlotBounds(points), cfg)

	c := newCanvas(w)
	c.begin(cfg.Width, cfg.Height, cfg.Background)
	c.frame(cfg)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = s.Point(p)
	}
	c.Polyline(xs, ys, `fill="none"`, attr("stroke", cfg.Color), `stroke-width="2"`)
	for i := range points {
		c.Circle(xs[i], ys[i], pointRadius, attr("fill", cfg.Color))
	}

	return c.end()
}
