package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	infraconfig "github.com/felixgeelhaar/graphs/infrastructure/config"
)

// configOptions holds options for the config command.
type configOptions struct {
	format string
}

// newConfigCmd creates the config command.
func (a *App) newConfigCmd() *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration charts are rendered with: the defaults, overlaid
with the --config file and command-line flags. The output is itself a valid
configuration file.

Examples:
  graphs config > graphs.yaml
  graphs config -c graphs.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return infraconfig.Encode(a.stdout, cfg, infraconfig.Format(opts.format))
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(infraconfig.FormatYAML), "Output format: yaml or json")

	return cmd
}

// validateOptions holds options for the validate command.
type validateOptions struct {
	strict bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Validate a graphs configuration file for correctness.

This command checks:
  - File format (YAML or JSON)
  - Canvas size and padding
  - Colors and the pie palette
  - Logging level and format
  - Environment variable references (in strict mode)

Examples:
  graphs validate -c graphs.yaml
  graphs validate -c graphs.yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.global.configPath == "" {
				return fmt.Errorf("configuration file path is required (-c flag)")
			}

			loader := infraconfig.NewLoader(infraconfig.WithStrictEnv(opts.strict))
			cfg, err := loader.LoadFile(a.global.configPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			_, _ = fmt.Fprintf(a.stdout, "✓ Configuration is valid\n")
			_, _ = fmt.Fprintf(a.stdout, "  Output: %s (open: %t)\n", cfg.Output.Dir, cfg.Output.Open)
			_, _ = fmt.Fprintf(a.stdout, "  Canvas: %dx%d, padding %d\n", cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.Padding)
			_, _ = fmt.Fprintf(a.stdout, "  Pie palette: %d colors\n", len(cfg.PieConfig().Palette))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Enable strict validation (fail on missing env vars)")

	return cmd
}
