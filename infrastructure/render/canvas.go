// Package render emits standalone SVG documents for charts using svgo.
package render

import (
	"fmt"
	"html"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

// Fixed presentation values shared by every chart.
const (
	decimals = 2

	gridDivisions = 10
	gridStroke    = "#e5e7eb"
	axisStroke    = "#1f2937"
	titleFill     = "#1f2937"
	labelFill     = "#4b5563"

	titleY        = 30
	titleFontSize = 20
	labelFontSize = 14
	xLabelInset   = 10
	yLabelX       = 20
)

// canvas wraps an svgo document and remembers the first write error, since
// svgo itself discards them.
type canvas struct {
	*svg.SVG
	out *errWriter
}

func newCanvas(w io.Writer) *canvas {
	out := &errWriter{w: w}
	doc := svg.New(out)
	doc.Decimals = decimals
	return &canvas{SVG: doc, out: out}
}

// begin writes the XML header, the root element sized in whole pixels and a
// full-size background rectangle.
func (c *canvas) begin(width, height int, background string) {
	c.Decimals = 0
	c.Start(float64(width), float64(height))
	c.Decimals = decimals
	c.Rect(0, 0, float64(width), float64(height), attr("fill", background))
}

// end closes the document and reports any write error.
func (c *canvas) end() error {
	c.End()
	return c.out.err
}

// frame draws the grid, axes and labels common to line, bar and scatter charts.
func (c *canvas) frame(cfg chart.Config) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	pad := float64(cfg.Padding)
	innerW, innerH := float64(cfg.InnerWidth()), float64(cfg.InnerHeight())

	if cfg.ShowGrid {
		c.Group(`id="grid"`, attr("stroke", gridStroke), `stroke-width="1"`)
		for i := 0; i <= gridDivisions; i++ {
			x := pad + innerW*float64(i)/gridDivisions
			c.Line(x, pad, x, h-pad)
			y := pad + innerH*float64(i)/gridDivisions
			c.Line(pad, y, w-pad, y)
		}
		c.Gend()
	}

	c.Group(`id="axes"`, attr("stroke", axisStroke), `stroke-width="2"`)
	c.Line(pad, h-pad, w-pad, h-pad)
	c.Line(pad, pad, pad, h-pad)
	c.Gend()

	c.title(w/2, cfg.Title)
	c.Text(w/2, h-xLabelInset, cfg.XLabel,
		`text-anchor="middle"`, fontSize(labelFontSize), attr("fill", labelFill))
	c.Text(yLabelX, h/2, cfg.YLabel,
		`text-anchor="middle"`, fontSize(labelFontSize), attr("fill", labelFill),
		fmt.Sprintf(`transform="rotate(-90 %d %s)"`, yLabelX, num(h/2)))
}

func (c *canvas) title(x float64, text string) {
	c.Text(x, titleY, text,
		`text-anchor="middle"`, fontSize(titleFontSize), `font-weight="bold"`, attr("fill", titleFill))
}

// attr formats a name="value" pair. svgo passes strings containing '=' through
// verbatim, so the value is escaped here.
func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

func fontSize(size int) string {
	return fmt.Sprintf(`font-size="%d"`, size)
}

func num(v float64) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
