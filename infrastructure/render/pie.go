package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

const (
	sliceStroke      = "#ffffff"
	pieLabelFontSize = 14
)

// Pie draws one wedge per value, clockwise from 12 o'clock, each labelled
// with its truncated percentage. A wedge covering the whole circle is drawn
// as a circle since an arc with coincident end points renders nothing.
func Pie(w io.Writer, values []float64, cfg chart.PieConfig) error {
	slices, err := chart.Slices(values)
	if err != nil {
		return err
	}

	c := newCanvas(w)
	c.begin(cfg.Width, cfg.Height, cfg.Background)
	c.title(cfg.CenterX, cfg.Title)

	for _, s := range slices {
		style := []string{attr("fill", cfg.Color(s.Index)), attr("stroke", sliceStroke), `stroke-width="2"`}
		if s.IsFull() {
			c.Circle(cfg.CenterX, cfg.CenterY, cfg.Radius, style...)
		} else {
			c.Path(wedgePath(s, cfg.CenterX, cfg.CenterY, cfg.Radius), style...)
		}
	}
	for _, s := range slices {
		lp := s.LabelPoint(cfg.CenterX, cfg.CenterY, cfg.Radius)
		c.Text(lp.X, lp.Y, fmt.Sprintf("%d%%", s.Percent()),
			`text-anchor="middle"`, fontSize(pieLabelFontSize), attr("fill", sliceStroke), `font-weight="bold"`)
	}

	return c.end()
}

// wedgePath returns "M cx cy L x1 y1 A r r 0 large 1 x2 y2 Z".
func wedgePath(s chart.Slice, cx, cy, r float64) string {
	start, end := s.ArcPoints(cx, cy, r)
	large := 0
	if s.LargeArc() {
		large = 1
	}
	return strings.Join([]string{
		"M", num(cx), num(cy),
		"L", num(start.X), num(start.Y),
		"A", num(r), num(r), "0", fmt.Sprint(large), "1", num(end.X), num(end.Y),
		"Z",
	}, " ")
}
