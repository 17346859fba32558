package render

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/felixgeelhaar/graphs/domain/chart"
)

var numberAttr = regexp.MustCompile(`\s(?:cx|cy|r|x|y|x1|y1|x2|y2|width|height)="([^"]*)"`)

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()

	if !strings.HasPrefix(doc, `<?xml version="1.0"?>`) {
		t.Errorf("document does not start with XML declaration: %.40q", doc)
	}
	if !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Error("document does not end with </svg>")
	}
	if strings.Contains(doc, "NaN") || strings.Contains(doc, "Inf") {
		t.Error("document contains NaN or Inf")
	}
	for _, m := range numberAttr.FindAllStringSubmatch(doc, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("non-finite numeric attribute %s", m[0])
		}
	}
}

func render(t *testing.T, fn CartesianFunc, points []chart.Point, cfg chart.Config) string {
	t.Helper()

	var buf bytes.Buffer
	if err := fn(&buf, points, cfg); err != nil {
		t.Fatalf("render error = %v", err)
	}
	doc := buf.String()
	assertWellFormed(t, doc)
	return doc
}

func TestLine(t *testing.T) {
	t.Parallel()

	doc := render(t, Line, chart.ParsePairs("0:0,1:1,2:4"), chart.DefaultConfig())

	if n := strings.Count(doc, "<polyline"); n != 1 {
		t.Errorf("polyline count = %d, want 1", n)
	}
	if n := strings.Count(doc, "<circle"); n != 3 {
		t.Errorf("circle count = %d, want 3", n)
	}
	if !strings.Contains(doc, `width="800" height="600"`) {
		t.Error("root element should be sized 800x600")
	}
	if !strings.Contains(doc, ">Graph</text>") {
		t.Error("default title missing")
	}
	if !strings.Contains(doc, `id="grid"`) || !strings.Contains(doc, `id="axes"`) {
		t.Error("grid or axes group missing")
	}
	if !strings.Contains(doc, `transform="rotate(-90 20 300.00)"`) {
		t.Error("Y label should be rotated about (20, 300)")
	}
}

func TestLine_PointOrderPreserved(t *testing.T) {
	t.Parallel()

	doc := render(t, Line, chart.ParsePairs("2:0,0:0,1:0"), chart.DefaultConfig())

	m := regexp.MustCompile(`<polyline points="([^"]*)"`).FindStringSubmatch(doc)
	if m == nil {
		t.Fatal("polyline not found")
	}
	coords := strings.Fields(m[1])
	if len(coords) != 3 {
		t.Fatalf("polyline has %d points, want 3", len(coords))
	}
	first, _ := strconv.ParseFloat(strings.Split(coords[0], ",")[0], 64)
	second, _ := strconv.ParseFloat(strings.Split(coords[1], ",")[0], 64)
	if first <= second {
		t.Errorf("polyline should follow input order, got x %v then %v", first, second)
	}
}

func TestLine_CustomTitleEscaped(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig().WithTitle("A & B <1>")
	doc := render(t, Line, chart.ParsePairs("0:1,1:2"), cfg)
	if !strings.Contains(doc, ">A &amp; B &lt;1&gt;</text>") {
		t.Error("title should be XML-escaped")
	}
}

func TestLine_NoGrid(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	cfg.ShowGrid = false
	doc := render(t, Line, chart.ParsePairs("0:1,1:2"), cfg)
	if strings.Contains(doc, `id="grid"`) {
		t.Error("grid drawn with ShowGrid=false")
	}
}

func TestLine_Degenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"single point", "3:3"},
		{"vertical", "1:1,1:5"},
		{"horizontal", "1:2,5:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			render(t, Line, chart.ParsePairs(tt.data), chart.DefaultConfig())
		})
	}
}

func TestCartesian_ExtremeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   CartesianFunc
		data []chart.Point
	}{
		{"line across the float range", Line, chart.ParsePairs("-1e308:0,1e308:1")},
		{"scatter across the float range", Scatter, chart.ParsePairs("-1e308:-1e308,1e308:1e308")},
		{"line flat at a huge value", Line, chart.ParsePairs("1e300:1e300,1e300:1e300")},
		{"bar at the float limit", Bar, chart.ParseBarData("1.7976931348623157e308,1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			render(t, tt.fn, tt.data, chart.DefaultConfig())
		})
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	doc := render(t, Bar, chart.ParseBarData("10,20,30"), chart.DefaultConfig())

	// One background rect plus one per bar.
	if n := strings.Count(doc, "<rect"); n != 4 {
		t.Errorf("rect count = %d, want 4", n)
	}
	for _, label := range []string{">10</text>", ">20</text>", ">30</text>"} {
		if !strings.Contains(doc, label) {
			t.Errorf("missing bar label %s", label)
		}
	}
	if n := strings.Count(doc, `opacity="0.8"`); n != 3 {
		t.Errorf("bar opacity count = %d, want 3", n)
	}
}

func TestBar_Geometry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Bar(&buf, chart.ParseBarData("10,20,30"), chart.DefaultConfig()); err != nil {
		t.Fatalf("Bar() error = %v", err)
	}

	// Slot width 680/3, bar width 680/4.5; the tallest bar reaches 30/33 of 480.
	want := `<rect x="551.11" y="103.64" width="151.11" height="436.36"`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("tallest bar not found; want %s in\n%s", want, buf.String())
	}
}

func TestBar_NonPositive(t *testing.T) {
	t.Parallel()

	doc := render(t, Bar, chart.ParseBarData("0,-2.7,0"), chart.DefaultConfig())
	if !strings.Contains(doc, ">-2</text>") {
		t.Error("negative value should be labelled truncated toward zero")
	}
	if strings.Contains(doc, ">-0</text>") {
		t.Error("label should not show negative zero")
	}
}

func TestBarLabel(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		10:    "10",
		12.9:  "12",
		-12.9: "-12",
		-0.4:  "0",
		0:     "0",
	}
	for in, want := range tests {
		if got := barLabel(in); got != want {
			t.Errorf("barLabel(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestScatter(t *testing.T) {
	t.Parallel()

	doc := render(t, Scatter, chart.ParsePairs("1:2,3:4,5:1,1:2"), chart.DefaultConfig())

	if n := strings.Count(doc, "<circle"); n != 4 {
		t.Errorf("circle count = %d, want 4", n)
	}
	if n := strings.Count(doc, `opacity="0.7"`); n != 4 {
		t.Errorf("scatter opacity count = %d, want 4", n)
	}
	if strings.Contains(doc, "<polyline") {
		t.Error("scatter should not draw a polyline")
	}
}

func TestCartesian_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, kind := range []chart.Kind{chart.KindLine, chart.KindBar, chart.KindScatter} {
		fn, err := Cartesian(kind)
		if err != nil {
			t.Fatalf("Cartesian(%s) error = %v", kind, err)
		}
		var buf bytes.Buffer
		if err := fn(&buf, nil, chart.DefaultConfig()); !errors.Is(err, chart.ErrNoData) {
			t.Errorf("%s with no points error = %v, want ErrNoData", kind, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s wrote %d bytes for empty input", kind, buf.Len())
		}
	}

	if _, err := Cartesian(chart.KindPie); !errors.Is(err, chart.ErrUnknownKind) {
		t.Errorf("Cartesian(pie) error = %v, want ErrUnknownKind", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	t.Parallel()

	if err := Line(failingWriter{}, chart.ParsePairs("0:0,1:1"), chart.DefaultConfig()); err == nil {
		t.Error("Line() should report write errors")
	}
	if err := Pie(failingWriter{}, []float64{1, 2}, chart.DefaultPieConfig()); err == nil {
		t.Error("Pie() should report write errors")
	}
}
