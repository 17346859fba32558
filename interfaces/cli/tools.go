package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/graphs/domain/tool"
)

// toolsOptions holds options for the tools command.
type toolsOptions struct {
	asJSON  bool
	verbose bool
}

// toolInfo is the JSON form of a listed tool.
type toolInfo struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Annotations  tool.Annotations `json:"annotations"`
	InputSchema  tool.Schema      `json:"input_schema"`
	OutputSchema tool.Schema      `json:"output_schema"`
}

// newToolsCmd creates the tools command.
func (a *App) newToolsCmd() *cobra.Command {
	opts := &toolsOptions{}

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the chart tools",
		Long: `List the tools exposed to host runtimes and MCP clients.

Examples:
  graphs tools
  graphs tools -v
  graphs tools --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.newRuntime()
			if err != nil {
				return err
			}
			return a.listTools(rt.tools.List(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print tools as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show annotations and schemas")

	return cmd
}

func (a *App) listTools(tools []tool.Tool, opts *toolsOptions) error {
	if opts.asJSON {
		infos := make([]toolInfo, 0, len(tools))
		for _, t := range tools {
			infos = append(infos, toolInfo{
				Name:         t.Name(),
				Description:  t.Description(),
				Annotations:  t.Annotations(),
				InputSchema:  t.InputSchema(),
				OutputSchema: t.OutputSchema(),
			})
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	_, _ = fmt.Fprintf(a.stdout, "Tools (%d):\n", len(tools))
	for _, t := range tools {
		_, _ = fmt.Fprintf(a.stdout, "\n  %s\n    %s\n", t.Name(), t.Description())
		if !opts.verbose {
			continue
		}
		ann := t.Annotations()
		_, _ = fmt.Fprintf(a.stdout, "    Idempotent: %t  Writes files: %t  Opens viewer: %t\n",
			ann.Idempotent, ann.WritesFiles, ann.OpensViewer)
		if len(ann.Tags) > 0 {
			_, _ = fmt.Fprintf(a.stdout, "    Tags: %s\n", strings.Join(ann.Tags, ", "))
		}
		_, _ = fmt.Fprintf(a.stdout, "    Input: %s\n", t.InputSchema().Raw())
	}
	return nil
}
