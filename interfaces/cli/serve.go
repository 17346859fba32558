package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/graphs/infrastructure/logging"
	"github.com/felixgeelhaar/graphs/infrastructure/mcp"
)

// serveOptions holds options for the serve command.
type serveOptions struct {
	httpAddr string
}

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart tools over MCP",
		Long: `Serve line, bar, scatter and pie to MCP clients.

The server speaks MCP over stdin/stdout unless --http is given. Logs go to
stderr so the protocol stream stays clean.

Examples:
  graphs serve
  graphs serve --http localhost:8080 --no-open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.newRuntime()
			if err != nil {
				return err
			}

			srv := newMCPServer(rt)

			transport := "stdio"
			if opts.httpAddr != "" {
				transport = "http"
			}
			logging.Info().
				Add(logging.Component("mcp")).
				Add(logging.Str("transport", transport)).
				Add(logging.Path(rt.config.Output.Dir)).
				Msg("serving chart tools")

			if opts.httpAddr != "" {
				return srv.ServeHTTP(cmd.Context(), opts.httpAddr)
			}
			return srv.ServeStdio(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.httpAddr, "http", "", "Serve over HTTP on this address instead of stdio")

	return cmd
}

// newMCPServer exposes the runtime's tools with panic recovery and request IDs.
func newMCPServer(rt *runtime) *mcp.Server {
	srv := mcp.NewServer(mcp.ServerConfig{
		Name:         "graphs",
		Version:      Version,
		Registry:     rt.tools,
		Description:  "SVG chart rendering",
		Instructions: `Each tool takes "data" (comma-separated values or x:y pairs) and an optional "title", writes graph_<tool>.svg and answers true or false.`,
	})
	srv.Use(mcp.Recover(), mcp.RequestID())
	return srv
}
