package render

import (
	"io"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

const scatterRadius = 5

// Scatter draws one translucent circle per point.
func Scatter(w io.Writer, points []chart.Point, cfg chart.Config) error {
	if len(points) == 0 {
		return chart.ErrNoData
	}
	s := chart.NewScaler(chart.PlotBounds(points), cfg)

	c := newCanvas(w)
	c.begin(cfg.Width, cfg.Height, cfg.Background)
	c.frame(cfg)

	for _, p := range points {
		x, y := s.Point(p)
		c.Circle(x, y, scatterRadius, attr("fill", cfg.Color), `opacity="0.7"`)
	}

	return c.end()
}
