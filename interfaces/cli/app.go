// Package cli provides the graphs command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	graphs "github.com/felixgeelhaar/graphs"
	"github.com/felixgeelhaar/graphs/domain/artifact"
)

// Version information set at build time.
var (
	Version   = graphs.Version
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	// opener replaces the desktop launcher when set.
	opener artifact.Opener

	global globalOptions
}

// globalOptions are flags shared by every command.
type globalOptions struct {
	configPath string
	outDir     string
	noOpen     bool
	logLevel   string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "graphs",
		Short: "Render line, bar, scatter and pie charts as SVG",
		Long: `graphs renders simple numeric input into standalone SVG charts, writes
them to graph_<kind>.svg and opens them with the desktop's default viewer.

Data is a comma-separated list of values ("3,5,2") or x:y pairs ("0:1,1:3").
The same four charts are available to MCP clients through "graphs serve".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.global.configPath, "config", "c", "", "Path to configuration file (YAML or JSON)")
	flags.StringVarP(&app.global.outDir, "out-dir", "o", "", "Directory charts are written to (overrides output.dir)")
	flags.BoolVar(&app.global.noOpen, "no-open", false, "Do not open charts after writing them")
	flags.StringVar(&app.global.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides logging.level)")

	app.root.AddCommand(app.newChartCmds()...)
	app.root.AddCommand(
		app.newCallCmd(),
		app.newToolsCmd(),
		app.newServeCmd(),
		app.newWatchCmd(),
		app.newConfigCmd(),
		app.newValidateCmd(),
		app.newVersionCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithOpener replaces the desktop launcher. --no-open still takes precedence.
func (a *App) WithOpener(o artifact.Opener) *App {
	a.opener = o
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.stdout, "graphs version %s\n", Version)
			_, _ = fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
