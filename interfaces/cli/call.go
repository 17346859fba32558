package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/graphs/domain/tool"
	"github.com/felixgeelhaar/graphs/infrastructure/logging"
)

// newCallCmd creates the call command.
func (a *App) newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments]",
		Short: "Invoke a chart tool the way a host runtime does",
		Long: `Invoke a tool with JSON arguments and print its JSON result.

Arguments may be a JSON list ["data", "title"], an object
{"data": "...", "title": "..."} or a plain data string.

Examples:
  graphs call line '["0:1,1:3,2:2", "Trend"]'
  graphs call pie '{"data": "30,50,20"}'
  graphs call bar 3,5,2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.newRuntime()
			if err != nil {
				return err
			}

			t, ok := rt.tools.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", tool.ErrToolNotFound, args[0])
			}

			input := json.RawMessage(`[]`)
			if len(args) > 1 {
				input = callInput(args[1])
			}

			result, err := t.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			if result.IsError() {
				logging.Debug().
					Add(logging.ToolName(t.Name())).
					Add(logging.ErrorField(result.Error)).
					Msg("tool call failed")
			}

			_, _ = fmt.Fprintln(a.stdout, result.OutputString())
			return nil
		},
	}
}

// callInput passes JSON lists, objects and strings through and wraps
// anything else, bare numbers included, as the data argument.
func callInput(arg string) json.RawMessage {
	trimmed := strings.TrimSpace(arg)
	if json.Valid([]byte(trimmed)) && strings.ContainsAny(trimmed[:1], `[{"`) {
		return json.RawMessage(trimmed)
	}
	raw, _ := json.Marshal([]string{arg})
	return raw
}
