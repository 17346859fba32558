package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/infrastructure/logging"
	"github.com/felixgeelhaar/graphs/infrastructure/source"
)

// watchOptions holds options for the watch command.
type watchOptions struct {
	title string
	sheet string
}

// newWatchCmd creates the watch command.
func (a *App) newWatchCmd() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <kind> <file>",
		Short: "Re-render a chart whenever its data file changes",
		Long: `Render a chart from a data file, then render it again after every change
to the file until interrupted. Spreadsheets (.xlsx) are read with --sheet;
any other file is read as text.

Examples:
  graphs watch line data.txt
  graphs watch bar sales.xlsx --sheet Q1 --title "Q1 sales"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := chart.ParseKind(args[0])
			if err != nil {
				return err
			}

			rt, err := a.newRuntime()
			if err != nil {
				return err
			}

			watcher, err := source.NewWatcher(args[1], rt.config.Watch.Debounce.Duration())
			if err != nil {
				return err
			}

			src := source.ForPath(args[1], opts.sheet)
			title := titles(cmd, opts.title)
			render := func(ctx context.Context) {
				data, err := src.Read(ctx)
				if err != nil {
					logging.Warn().
						Add(logging.ChartKind(kind)).
						Add(logging.Path(watcher.Path())).
						Add(logging.ErrorField(err)).
						Msg("could not read data")
					return
				}
				ref, err := rt.plotter.Plot(ctx, kind, data, title...)
				if err != nil {
					return
				}
				_, _ = fmt.Fprintln(a.stdout, ref.Path)
			}

			render(cmd.Context())
			logging.Info().
				Add(logging.ChartKind(kind)).
				Add(logging.Path(watcher.Path())).
				Msg("watching for changes")

			return watcher.Run(cmd.Context(), render)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Chart title (default from configuration)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read from a spreadsheet (default: first sheet)")

	return cmd
}
