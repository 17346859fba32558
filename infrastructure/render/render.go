package render

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

// CartesianFunc renders points on a scaled canvas.
type CartesianFunc func(w io.Writer, points []chart.Point, cfg chart.Config) error

// Cartesian returns the renderer for a line, bar or scatter chart.
func Cartesian(kind chart.Kind) (CartesianFunc, error) {
	switch kind {
	case chart.KindLine:
		return Line, nil
	case chart.KindBar:
		return Bar, nil
	case chart.KindScatter:
		return Scatter, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a cartesian chart", chart.ErrUnknownKind, kind)
	}
}
