// Package config provides the domain model for graphs configuration files.
package config

import (
	"time"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

// Config is the complete configuration read from a YAML or JSON file.
type Config struct {
	// Output controls where charts are written and whether they are opened.
	Output OutputConfig `json:"output" yaml:"output"`
	// Chart configures line, bar and scatter charts.
	Chart ChartSettings `json:"chart" yaml:"chart"`
	// Pie configures pie charts.
	Pie PieSettings `json:"pie" yaml:"pie"`
	// Logging configures the process logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	// Watch configures the watch command.
	Watch WatchConfig `json:"watch" yaml:"watch"`
}

// OutputConfig controls the file sink.
type OutputConfig struct {
	// Dir is the directory charts are written to.
	Dir string `json:"dir" yaml:"dir"`
	// Open asks the OS to open each chart after writing it.
	Open bool `json:"open" yaml:"open"`
}

// ChartSettings mirrors chart.Config.
type ChartSettings struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Padding    int    `json:"padding" yaml:"padding"`
	Title      string `json:"title" yaml:"title"`
	XLabel     string `json:"x_label" yaml:"x_label"`
	YLabel     string `json:"y_label" yaml:"y_label"`
	Color      string `json:"color" yaml:"color"`
	Background string `json:"background" yaml:"background"`
	Grid       bool   `json:"grid" yaml:"grid"`
	Legend     bool   `json:"legend" yaml:"legend"`
}

// PieSettings exposes the pie title and palette. Pie geometry is fixed.
type PieSettings struct {
	Title   string   `json:"title" yaml:"title"`
	Palette []string `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
	// Format is json or console.
	Format string `json:"format" yaml:"format"`
}

// WatchConfig configures re-rendering on file changes.
type WatchConfig struct {
	// Debounce collapses bursts of write events into one render.
	Debounce Duration `json:"debounce" yaml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	c := chart.DefaultConfig()
	p := chart.DefaultPieConfig()
	return Config{
		Output: OutputConfig{
			Dir:  ".",
			Open: true,
		},
		Chart: ChartSettings{
			Width:      c.Width,
			Height:     c.Height,
			Padding:    c.Padding,
			Title:      c.Title,
			XLabel:     c.XLabel,
			YLabel:     c.YLabel,
			Color:      c.Color,
			Background: c.Background,
			Grid:       c.ShowGrid,
			Legend:     c.ShowLegend,
		},
		Pie: PieSettings{
			Title:   p.Title,
			Palette: p.Palette,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Watch: WatchConfig{
			Debounce: Duration(100 * time.Millisecond),
		},
	}
}

// ChartConfig converts the chart settings into a renderer configuration.
func (c Config) ChartConfig() chart.Config {
	s := c.Chart
	return chart.Config{
		Width:      s.Width,
		Height:     s.Height,
		Padding:    s.Padding,
		Title:      s.Title,
		XLabel:     s.XLabel,
		YLabel:     s.YLabel,
		Color:      s.Color,
		Background: s.Background,
		ShowGrid:   s.Grid,
		ShowLegend: s.Legend,
	}
}

// PieConfig converts the pie settings into a renderer configuration.
func (c Config) PieConfig() chart.PieConfig {
	p := chart.DefaultPieConfig()
	p.Title = c.Pie.Title
	if len(c.Pie.Palette) > 0 {
		p.Palette = append([]string(nil), c.Pie.Palette...)
	}
	return p
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
