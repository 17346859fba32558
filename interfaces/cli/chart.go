package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/infrastructure/source"
)

var chartUsage = map[chart.Kind]struct{ short, example string }{
	chart.KindLine: {
		short:   "Draw a line chart from x:y pairs",
		example: `  graphs line "0:1,1:3,2:2,3:5" --title "Growth"`,
	},
	chart.KindBar: {
		short:   "Draw a bar chart from values or x:y pairs",
		example: `  graphs bar "3,5,2,8"` + "\n" + `  graphs bar --xlsx sales.xlsx --sheet Q1`,
	},
	chart.KindScatter: {
		short:   "Draw a scatter plot from x:y pairs",
		example: `  graphs scatter "1:2,2:3,3:1" --no-open`,
	},
	chart.KindPie: {
		short:   "Draw a pie chart from non-negative values",
		example: `  graphs pie "30,50,20" --title "Share"`,
	},
}

// chartOptions holds options for the chart commands.
type chartOptions struct {
	title string
	file  string
	xlsx  string
	sheet string
}

// source selects where the chart data comes from. Exactly one of the
// argument, --file and --xlsx must be given.
func (o *chartOptions) source(args []string) (source.Source, error) {
	given := 0
	for _, set := range []bool{len(args) > 0, o.file != "", o.xlsx != ""} {
		if set {
			given++
		}
	}
	switch {
	case given == 0:
		return nil, errors.New("data is required: pass it as an argument or use --file or --xlsx")
	case given > 1:
		return nil, errors.New("use only one of the data argument, --file and --xlsx")
	case o.file != "":
		return source.NewFile(o.file), nil
	case o.xlsx != "":
		return source.NewSpreadsheet(o.xlsx, o.sheet), nil
	default:
		return source.Literal(args[0]), nil
	}
}

// titles returns the explicit title, if the flag was set, in the form the
// plotter takes. An explicitly empty title is kept.
func titles(cmd *cobra.Command, title string) []string {
	if !cmd.Flags().Changed("title") {
		return nil
	}
	return []string{title}
}

// newChartCmds creates one command per chart kind.
func (a *App) newChartCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(chart.AllKinds()))
	for _, kind := range chart.AllKinds() {
		cmds = append(cmds, a.newChartCmd(kind))
	}
	return cmds
}

func (a *App) newChartCmd(kind chart.Kind) *cobra.Command {
	opts := &chartOptions{}
	usage := chartUsage[kind]

	cmd := &cobra.Command{
		Use:     kind.String() + " [data]",
		Short:   usage.short,
		Long:    usage.short + ". The chart is written to " + kind.FileName() + " and opened.",
		Example: usage.example,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.source(args)
			if err != nil {
				return err
			}

			rt, err := a.newRuntime()
			if err != nil {
				return err
			}

			data, err := src.Read(cmd.Context())
			if err != nil {
				return err
			}

			ref, err := rt.plotter.Plot(cmd.Context(), kind, data, titles(cmd, opts.title)...)
			if err != nil {
				return fmt.Errorf("%s chart: %w", kind, err)
			}

			_, _ = fmt.Fprintln(a.stdout, ref.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Chart title (default from configuration)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read data from a text file")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Read data from a spreadsheet")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read with --xlsx (default: first sheet)")

	return cmd
}
