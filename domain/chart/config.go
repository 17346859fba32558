package chart

// Default values for Cartesian charts.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultPadding    = 60
	DefaultTitle      = "Graph"
	DefaultXLabel     = "X"
	DefaultYLabel     = "Y"
	DefaultColor      = "#2563eb"
	DefaultBackground = "#ffffff"
)

// Default values for pie charts. The pie canvas and geometry are fixed.
const (
	PieWidth    = 800
	PieHeight   = 600
	PieCenterX  = 400.0
	PieCenterY  = 320.0
	PieRadius   = 180.0
	PieTitle    = "Pie Chart"
	PieStartDeg = -90.0

	// PieLabelRatio places percentage labels at this fraction of the radius.
	PieLabelRatio = 0.7
)

// DefaultPalette returns the fixed slice colour cycle used by pie charts.
func DefaultPalette() []string {
	return []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899"}
}

// Config holds rendering parameters for line, bar and scatter charts.
// A Config is treated as immutable for the duration of one render.
type Config struct {
	Width      int
	Height     int
	Padding    int
	Title      string
	XLabel     string
	YLabel     string
	Color      string
	Background string
	ShowGrid   bool

	// ShowLegend is reserved; single-series charts do not draw a legend.
	ShowLegend bool
}

// DefaultConfig returns the standard 800x600 chart configuration.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Padding:    DefaultPadding,
		Title:      DefaultTitle,
		XLabel:     DefaultXLabel,
		YLabel:     DefaultYLabel,
		Color:      DefaultColor,
		Background: DefaultBackground,
		ShowGrid:   true,
		ShowLegend: true,
	}
}

// WithTitle returns a copy of the config using the given title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// InnerWidth returns the plot width inside the padding.
func (c Config) InnerWidth() int {
	return c.Width - 2*c.Padding
}

// InnerHeight returns the plot height inside the padding.
func (c Config) InnerHeight() int {
	return c.Height - 2*c.Padding
}

// PieConfig holds rendering parameters for pie charts.
type PieConfig struct {
	Width      int
	Height     int
	CenterX    float64
	CenterY    float64
	Radius     float64
	Title      string
	Background string
	Palette    []string
}

// DefaultPieConfig returns the fixed pie configuration.
func DefaultPieConfig() PieConfig {
	return PieConfig{
		Width:      PieWidth,
		Height:     PieHeight,
		CenterX:    PieCenterX,
		CenterY:    PieCenterY,
		Radius:     PieRadius,
		Title:      PieTitle,
		Background: DefaultBackground,
		Palette:    DefaultPalette(),
	}
}

// WithTitle returns a copy of the config using the given title.
func (c PieConfig) WithTitle(title string) PieConfig {
	c.Title = title
	return c
}

// Color returns the palette colour for the slice at index i.
func (c PieConfig) Color(i int) string {
	palette := c.Palette
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return palette[i%len(palette)]
}
