package render

import (
	"io"
	"math"
	"strconv"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

const (
	barSpacing     = 1.5
	barLabelOffset = 5
	barLabelSize   = 12
)

// Bar draws one bar per point in index order. Each bar is centred in its
// slot and labelled with its value truncated toward zero. Bars for values
// below the baseline are drawn with zero height.
func Bar(w io.Writer, points []chart.Point, cfg chart.Config) error {
	if len(points) == 0 {
		return chart.ErrNoData
	}
	b := chart.BarBounds(points)
	s := chart.NewScaler(b, cfg)
	barWidth := float64(cfg.InnerWidth()) / (float64(len(points)) * barSpacing)
	baseline := s.Y(b.MinY)

	c := newCanvas(w)
	c.begin(cfg.Width, cfg.Height, cfg.Background)
	c.frame(cfg)

	for i, p := range points {
		cx := s.X(float64(i) + 0.5)
		top := s.Y(math.Max(p.Y, b.MinY))
		c.Rect(cx-barWidth/2, top, barWidth, baseline-top, attr("fill", cfg.Color), `opacity="0.8"`)
		c.Text(cx, top-barLabelOffset, barLabel(p.Y),
			`text-anchor="middle"`, fontSize(barLabelSize), attr("fill", titleFill))
	}

	return c.end()
}

// barLabel formats v truncated toward zero, without a negative zero.
func barLabel(v float64) string {
	t := math.Trunc(v)
	if t == 0 {
		t = 0
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}
