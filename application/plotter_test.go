package application_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/felixgeelhaar/graphs/application"
	"github.com/felixgeelhaar/graphs/domain/artifact"
	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/infrastructure/launcher"
	"github.com/felixgeelhaar/graphs/infrastructure/storage/filesystem"
	"github.com/felixgeelhaar/graphs/infrastructure/storage/memory"
)

type recordedRender struct {
	kind    string
	success bool
	points  int
}

type fakeMetrics struct {
	mu           sync.Mutex
	renders      []recordedRender
	openFailures []string
	errorTypes   []string
}

func (m *fakeMetrics) RecordRender(_ context.Context, kind string, success bool, _ time.Duration, points int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renders = append(m.renders, recordedRender{kind: kind, success: success, points: points})
}

func (m *fakeMetrics) RecordOpenFailure(_ context.Context, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openFailures = append(m.openFailures, kind)
}

func (m *fakeMetrics) RecordError(_ context.Context, _ string, errorType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorTypes = append(m.errorTypes, errorType)
}

type fixture struct {
	plotter *application.Plotter
	store   *memory.ArtifactStore
	opener  *launcher.Recorder
	metrics *fakeMetrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		store:   memory.NewArtifactStore(),
		opener:  &launcher.Recorder{},
		metrics: &fakeMetrics{},
	}
	p, err := application.NewPlotterWithOptions(
		application.WithStore(f.store),
		application.WithOpener(f.opener),
		application.WithMetrics(f.metrics),
	)
	if err != nil {
		t.Fatalf("NewPlotterWithOptions() error = %v", err)
	}
	f.plotter = p
	return f
}

func (f fixture) content(t *testing.T, kind chart.Kind) string {
	t.Helper()
	data, ok := f.store.Content(kind.FileName())
	if !ok {
		t.Fatalf("%s was not written", kind.FileName())
	}
	return string(data)
}

func TestNewPlotter_RequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := application.NewPlotter(application.DefaultPlotterConfig()); err == nil {
		t.Error("NewPlotter() expected error without store")
	}
}

func TestPlotter_Charts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   chart.Kind
		call   func(*application.Plotter, context.Context, string, ...string) bool
		data   string
		marker string
		count  int
	}{
		{name: "line", kind: chart.KindLine, call: (*application.Plotter).Line, data: "0:0,1:1,2:4", marker: "<circle", count: 3},
		{name: "bar", kind: chart.KindBar, call: (*application.Plotter).Bar, data: "3,5,2,8", marker: `opacity="0.8"`, count: 4},
		{name: "scatter", kind: chart.KindScatter, call: (*application.Plotter).Scatter, data: "1:1,2:3", marker: "<circle", count: 2},
		{name: "pie", kind: chart.KindPie, call: (*application.Plotter).Pie, data: "1,2,3", marker: "<path", count: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			if !tt.call(f.plotter, context.Background(), tt.data) {
				t.Fatalf("%s(%q) = false, want true", tt.name, tt.data)
			}

			doc := f.content(t, tt.kind)
			if !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
				t.Error("document is not closed")
			}
			if got := strings.Count(doc, tt.marker); got != tt.count {
				t.Errorf("count(%s) = %d, want %d", tt.marker, got, tt.count)
			}

			paths := f.opener.Paths()
			if len(paths) != 1 || paths[0] != "mem://"+tt.kind.FileName() {
				t.Errorf("opened %v, want [mem://%s]", paths, tt.kind.FileName())
			}
		})
	}
}

func TestPlotter_Titles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  chart.Kind
		title []string
		want  string
	}{
		{name: "cartesian default", kind: chart.KindLine, want: ">Graph</text>"},
		{name: "cartesian explicit", kind: chart.KindLine, title: []string{"Sales"}, want: ">Sales</text>"},
		{name: "cartesian empty", kind: chart.KindScatter, title: []string{""}, want: "></text>"},
		{name: "pie default", kind: chart.KindPie, want: ">Pie Chart</text>"},
		{name: "pie explicit", kind: chart.KindPie, title: []string{"Share", "ignored"}, want: ">Share</text>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			data := "1:2,3:4"
			if tt.kind == chart.KindPie {
				data = "1,2"
			}
			if _, err := f.plotter.Plot(context.Background(), tt.kind, data, tt.title...); err != nil {
				t.Fatalf("Plot() error = %v", err)
			}
			if doc := f.content(t, tt.kind); !strings.Contains(doc, tt.want) {
				t.Errorf("document missing %q", tt.want)
			}
		})
	}
}

func TestPlotter_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     chart.Kind
		data     string
		wantErr  error
		wantType string
	}{
		{name: "empty line", kind: chart.KindLine, data: "", wantErr: chart.ErrNoData, wantType: "no_data"},
		{name: "line without pairs", kind: chart.KindLine, data: "1,2,3", wantErr: chart.ErrNoData, wantType: "no_data"},
		{name: "garbage bar", kind: chart.KindBar, data: "a,b", wantErr: chart.ErrNoData, wantType: "no_data"},
		{name: "zero pie", kind: chart.KindPie, data: "0,0", wantErr: chart.ErrNonPositiveTotal, wantType: "non_positive_total"},
		{name: "negative pie", kind: chart.KindPie, data: "5,-1", wantErr: chart.ErrNegativeValue, wantType: "negative_value"},
		{name: "unknown kind", kind: chart.Kind("radar"), data: "1:1", wantErr: chart.ErrUnknownKind, wantType: "unknown_kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.plotter.Plot(context.Background(), tt.kind, tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Plot() error = %v, want %v", err, tt.wantErr)
			}
			if f.store.Saves() != 0 {
				t.Error("nothing should be written on failure")
			}
			if len(f.opener.Paths()) != 0 {
				t.Error("opener should not be called on failure")
			}
			if len(f.metrics.errorTypes) != 1 || f.metrics.errorTypes[0] != tt.wantType {
				t.Errorf("error types = %v, want [%s]", f.metrics.errorTypes, tt.wantType)
			}
			if len(f.metrics.renders) != 1 || f.metrics.renders[0].success {
				t.Errorf("renders = %+v, want one failed render", f.metrics.renders)
			}
		})
	}
}

func TestPlotter_PieZeroTotalReturnsFalse(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if f.plotter.Pie(context.Background(), "0,0") {
		t.Error("Pie(\"0,0\") = true, want false")
	}
	if ok, _ := f.store.Exists(context.Background(), chart.KindPie.FileName()); ok {
		t.Error("graph_pie.svg should not exist")
	}
}

func TestPlotter_OpenFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.opener.Err = errors.New("no display")

	if !f.plotter.Bar(context.Background(), "1,2,3") {
		t.Fatal("Bar() = false, want true when only opening fails")
	}
	if len(f.metrics.openFailures) != 1 || f.metrics.openFailures[0] != "bar" {
		t.Errorf("open failures = %v, want [bar]", f.metrics.openFailures)
	}
	if len(f.metrics.errorTypes) != 0 {
		t.Errorf("error types = %v, want none", f.metrics.errorTypes)
	}
}

func TestPlotter_RecordsPoints(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.plotter.Scatter(context.Background(), "1:1,bad,2:2,3:x,4:4")

	if len(f.metrics.renders) != 1 {
		t.Fatalf("renders = %d, want 1", len(f.metrics.renders))
	}
	got := f.metrics.renders[0]
	if got.kind != "scatter" || !got.success || got.points != 3 {
		t.Errorf("render = %+v, want scatter success with 3 points", got)
	}
}

func TestPlotter_OverwritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := filesystem.NewArtifactStore(dir)
	if err != nil {
		t.Fatalf("NewArtifactStore() error = %v", err)
	}
	p, err := application.NewPlotter(application.PlotterConfig{
		Store: store,
		Chart: chart.DefaultConfig(),
		Pie:   chart.DefaultPieConfig(),
	})
	if err != nil {
		t.Fatalf("NewPlotter() error = %v", err)
	}

	ctx := context.Background()
	if !p.Line(ctx, "0:0,1:1", "first") || !p.Line(ctx, "0:0,1:1", "second") {
		t.Fatal("Line() = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(dir, "graph_line.svg"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Error("second call should replace the first document")
	}
}

func TestPlotter_WriteFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := filesystem.NewArtifactStore(dir)
	if err != nil {
		t.Fatalf("NewArtifactStore() error = %v", err)
	}
	// A directory in place of the output file makes the write fail.
	if err := os.Mkdir(filepath.Join(dir, chart.KindBar.FileName()), 0o750); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	p, err := application.NewPlotterWithOptions(application.WithStore(store))
	if err != nil {
		t.Fatalf("NewPlotterWithOptions() error = %v", err)
	}

	_, err = p.Plot(context.Background(), chart.KindBar, "1,2")
	if !errors.Is(err, artifact.ErrWriteFailed) {
		t.Errorf("Plot() error = %v, want ErrWriteFailed", err)
	}
}

func TestPlotter_CancelledContext(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if f.plotter.Line(ctx, "1:1,2:2") {
		t.Error("Line() = true with cancelled context")
	}
	if f.store.Saves() != 0 {
		t.Error("nothing should be written after cancellation")
	}
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{chart.ErrNoData, "no_data"},
		{artifact.ErrWriteFailed, "write_failed"},
		{context.DeadlineExceeded, "cancelled"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		if got := application.ErrorType(tt.err); got != tt.want {
			t.Errorf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
