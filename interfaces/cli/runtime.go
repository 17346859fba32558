package cli

import (
	"fmt"

	"github.com/felixgeelhaar/graphs/application"
	"github.com/felixgeelhaar/graphs/domain/artifact"
	"github.com/felixgeelhaar/graphs/domain/config"
	"github.com/felixgeelhaar/graphs/domain/tool"
	infraconfig "github.com/felixgeelhaar/graphs/infrastructure/config"
	"github.com/felixgeelhaar/graphs/infrastructure/launcher"
	"github.com/felixgeelhaar/graphs/infrastructure/logging"
	infrapack "github.com/felixgeelhaar/graphs/infrastructure/pack"
	"github.com/felixgeelhaar/graphs/infrastructure/storage/filesystem"
	"github.com/felixgeelhaar/graphs/infrastructure/storage/memory"
	"github.com/felixgeelhaar/graphs/infrastructure/telemetry"
	chartpack "github.com/felixgeelhaar/graphs/pack/graphs"
)

// runtime is the wiring shared by every command that renders charts.
type runtime struct {
	config  *config.Config
	plotter *application.Plotter
	tools   tool.Registry
}

// loadConfig reads the --config file, or the defaults, and applies flag
// overrides on top.
func (a *App) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if a.global.configPath != "" {
		loaded, err := infraconfig.NewLoader().LoadFile(a.global.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = *loaded
	}

	if a.global.outDir != "" {
		cfg.Output.Dir = a.global.outDir
	}
	if a.global.noOpen {
		cfg.Output.Open = false
	}
	if a.global.logLevel != "" {
		cfg.Logging.Level = a.global.logLevel
	}

	if errs := config.NewValidator().Validate(&cfg); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", config.ErrValidationFailed, errs)
	}
	return &cfg, nil
}

// newRuntime loads configuration and wires the plotter, the graphs pack and
// a tool registry holding its tools.
func (a *App) newRuntime() (*runtime, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: a.stderr,
	})

	store, err := filesystem.NewArtifactStore(cfg.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare output directory: %w", err)
	}

	metrics := telemetry.NewMetricsProvider(telemetry.MetricsConfig{
		MeterName:    telemetry.DefaultMetricsConfig().MeterName,
		MeterVersion: Version,
	})
	if err := metrics.Error(); err != nil {
		logging.Warn().
			Add(logging.Component("telemetry")).
			Add(logging.ErrorField(err)).
			Msg("metrics disabled")
	}

	plotter, err := application.NewPlotterWithOptions(
		application.WithStore(store),
		application.WithOpener(a.viewer(cfg)),
		application.WithMetrics(metrics),
		application.WithChartConfig(cfg.ChartConfig()),
		application.WithPieConfig(cfg.PieConfig()),
	)
	if err != nil {
		return nil, err
	}

	packs := infrapack.NewRegistry()
	if err := packs.Register(chartpack.New(plotter)); err != nil {
		return nil, err
	}
	tools := memory.NewToolRegistry()
	if err := packs.Install(chartpack.PackName, tools); err != nil {
		return nil, err
	}

	return &runtime{config: cfg, plotter: plotter, tools: tools}, nil
}

func (a *App) viewer(cfg *config.Config) artifact.Opener {
	switch {
	case !cfg.Output.Open:
		return launcher.Noop{}
	case a.opener != nil:
		return a.opener
	default:
		return launcher.NewBrowser()
	}
}
