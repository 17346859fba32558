package application

import (
	"github.com/felixgeelhaar/graphs/domain/artifact"
	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/infrastructure/telemetry"
)

// Option configures the plotter.
type Option func(*PlotterConfig)

// WithStore sets the artifact store charts are written to.
func WithStore(s artifact.Store) Option {
	return func(c *PlotterConfig) {
		c.Store = s
	}
}

// WithOpener sets the viewer launcher.
func WithOpener(o artifact.Opener) Option {
	return func(c *PlotterConfig) {
		c.Opener = o
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m telemetry.Metrics) Option {
	return func(c *PlotterConfig) {
		c.Metrics = m
	}
}

// WithChartConfig sets the line, bar and scatter canvas settings.
func WithChartConfig(cfg chart.Config) Option {
	return func(c *PlotterConfig) {
		c.Chart = cfg
	}
}

// WithPieConfig sets the pie canvas settings.
func WithPieConfig(cfg chart.PieConfig) Option {
	return func(c *PlotterConfig) {
		c.Pie = cfg
	}
}

// NewPlotterWithOptions creates a plotter from the default configuration
// and functional options.
func NewPlotterWithOptions(opts ...Option) (*Plotter, error) {
	config := DefaultPlotterConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return NewPlotter(config)
}
