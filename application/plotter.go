// Package application provides the plot service: it parses chart input,
// renders it, persists the document and asks the desktop to show it.
package application

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/graphs/domain/artifact"
	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/infrastructure/logging"
	"github.com/felixgeelhaar/graphs/infrastructure/render"
	"github.com/felixgeelhaar/graphs/infrastructure/telemetry"
)

// Plotter is the orchestration service behind the chart tools. Each call is
// independent and synchronous; nothing is retained between calls except the
// output file for the chart kind, which is overwritten.
type Plotter struct {
	store   artifact.Store
	opener  artifact.Opener
	metrics telemetry.Metrics
	chart   chart.Config
	pie     chart.PieConfig
}

// PlotterConfig contains configuration for the plotter.
type PlotterConfig struct {
	Store   artifact.Store
	Opener  artifact.Opener
	Metrics telemetry.Metrics
	Chart   chart.Config
	Pie     chart.PieConfig
}

// DefaultPlotterConfig returns the default chart settings with no store.
func DefaultPlotterConfig() PlotterConfig {
	return PlotterConfig{
		Chart: chart.DefaultConfig(),
		Pie:   chart.DefaultPieConfig(),
	}
}

// NewPlotter creates a plotter. A store is required; a missing opener or
// metrics recorder falls back to a no-op.
func NewPlotter(config PlotterConfig) (*Plotter, error) {
	if config.Store == nil {
		return nil, errors.New("artifact store is required")
	}
	if config.Opener == nil {
		config.Opener = artifact.OpenerFunc(func(context.Context, string) error { return nil })
	}
	if config.Metrics == nil {
		config.Metrics = telemetry.NoopMetricsProvider{}
	}

	return &Plotter{
		store:   config.Store,
		opener:  config.Opener,
		metrics: config.Metrics,
		chart:   config.Chart,
		pie:     config.Pie,
	}, nil
}

// Line plots "x:y" pairs joined in input order.
func (p *Plotter) Line(ctx context.Context, data string, title ...string) bool {
	return p.ok(ctx, chart.KindLine, data, title)
}

// Bar plots a flat value list, or "x:y" pairs, as vertical bars.
func (p *Plotter) Bar(ctx context.Context, data string, title ...string) bool {
	return p.ok(ctx, chart.KindBar, data, title)
}

// Scatter plots "x:y" pairs as unconnected markers.
func (p *Plotter) Scatter(ctx context.Context, data string, title ...string) bool {
	return p.ok(ctx, chart.KindScatter, data, title)
}

// Pie plots a flat value list as proportional wedges.
func (p *Plotter) Pie(ctx context.Context, data string, title ...string) bool {
	return p.ok(ctx, chart.KindPie, data, title)
}

func (p *Plotter) ok(ctx context.Context, kind chart.Kind, data string, title []string) bool {
	_, err := p.Plot(ctx, kind, data, title...)
	return err == nil
}

// Plot renders data as the given chart kind and writes it to the kind's
// fixed file. An explicit title, even an empty one, replaces the default.
// Only the first title is used. Failing to open the viewer is logged and
// does not fail the call; nothing is written when parsing or rendering
// fails.
func (p *Plotter) Plot(ctx context.Context, kind chart.Kind, data string, title ...string) (artifact.Ref, error) {
	start := time.Now()

	ref, points, err := p.plot(ctx, kind, data, title)
	duration := time.Since(start)
	p.metrics.RecordRender(ctx, kind.String(), err == nil, duration, points)

	if err != nil {
		p.metrics.RecordError(ctx, kind.String(), ErrorType(err))
		logging.Warn().
			Add(logging.ChartKind(kind)).
			Add(logging.Points(points)).
			Add(logging.ErrorField(err)).
			Msg("chart not rendered")
		return artifact.Ref{}, err
	}

	logging.Info().
		Add(logging.ChartKind(kind)).
		Add(logging.Points(points)).
		Add(logging.Path(ref.Path)).
		Add(logging.Bytes(ref.Size)).
		Add(logging.Duration(duration)).
		Msg("chart rendered")

	if err := p.opener.Open(ctx, ref.Path); err != nil {
		p.metrics.RecordOpenFailure(ctx, kind.String())
		logging.Warn().
			Add(logging.ChartKind(kind)).
			Add(logging.Path(ref.Path)).
			Add(logging.ErrorField(err)).
			Msg("could not open chart")
	}

	return ref, nil
}

func (p *Plotter) plot(ctx context.Context, kind chart.Kind, data string, title []string) (artifact.Ref, int, error) {
	if err := ctx.Err(); err != nil {
		return artifact.Ref{}, 0, err
	}

	var (
		buf    bytes.Buffer
		points int
	)
	switch kind {
	case chart.KindPie:
		values := chart.ParseValues(data)
		points = len(values)
		cfg := p.pie
		if len(title) > 0 {
			cfg = cfg.WithTitle(title[0])
		}
		if err := render.Pie(&buf, values, cfg); err != nil {
			return artifact.Ref{}, points, err
		}
	default:
		draw, err := render.Cartesian(kind)
		if err != nil {
			return artifact.Ref{}, 0, err
		}
		parsed := parse(kind, data)
		points = len(parsed)
		cfg := p.chart
		if len(title) > 0 {
			cfg = cfg.WithTitle(title[0])
		}
		if err := draw(&buf, parsed, cfg); err != nil {
			return artifact.Ref{}, points, err
		}
	}

	ref, err := p.store.Save(ctx, kind.FileName(), &buf)
	if err != nil {
		return artifact.Ref{}, points, err
	}
	return ref, points, nil
}

func parse(kind chart.Kind, data string) []chart.Point {
	if kind == chart.KindBar {
		return chart.ParseBarData(data)
	}
	return chart.ParsePairs(data)
}

// ErrorType classifies err for metrics.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, chart.ErrNoData):
		return "no_data"
	case errors.Is(err, chart.ErrNonPositiveTotal):
		return "non_positive_total"
	case errors.Is(err, chart.ErrNegativeValue):
		return "negative_value"
	case errors.Is(err, chart.ErrUnknownKind):
		return "unknown_kind"
	case errors.Is(err, artifact.ErrWriteFailed), errors.Is(err, artifact.ErrInvalidName):
		return "write_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}
