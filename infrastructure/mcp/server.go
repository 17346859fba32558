package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpgo "github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/graphs/domain/tool"
	"github.com/felixgeelhaar/graphs/infrastructure/logging"
)

// Server exposes the tools of a registry to MCP clients.
type Server struct {
	srv        *mcpgo.Server
	registry   tool.Registry
	info       mcpgo.ServerInfo
	middleware []Middleware
}

// ServerConfig configures an MCP server.
type ServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Registry is the tool registry containing tools to expose.
	Registry tool.Registry

	// Description is an optional server description.
	Description string

	// Instructions provides usage instructions for clients.
	Instructions string
}

// NewServer creates an MCP server with every tool in cfg.Registry.
func NewServer(cfg ServerConfig) *Server {
	info := mcpgo.ServerInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	var opts []mcpgo.Option
	if cfg.Instructions != "" {
		opts = append(opts, mcpgo.WithInstructions(cfg.Instructions))
	}

	s := &Server{
		srv:      mcpgo.NewServer(info, opts...),
		registry: cfg.Registry,
		info:     info,
	}

	if cfg.Registry != nil {
		for _, t := range cfg.Registry.List() {
			s.registerTool(t)
		}
	}

	return s
}

func (s *Server) registerTool(t tool.Tool) {
	s.srv.Tool(t.Name()).
		Description(t.Description()).
		Handler(Handler(t))
}

// Handler adapts a tool to the mcp-go handler signature. The tool's JSON
// output is returned as the text content; a failed result still answers
// with its output so clients see false rather than a protocol error.
func Handler(t tool.Tool) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		result, err := t.Execute(ctx, input)
		if err != nil {
			return "", err
		}
		if result.IsError() {
			logging.Debug().
				Add(logging.ToolName(t.Name())).
				Add(logging.ErrorField(result.Error)).
				Msg("tool call failed")
		}
		return result.OutputString(), nil
	}
}

// Info returns the server metadata.
func (s *Server) Info() ServerInfo {
	return s.info
}

// Server returns the underlying mcp-go server.
func (s *Server) Server() *mcpgo.Server {
	return s.srv
}

// Use adds middleware to the request chain of every transport.
func (s *Server) Use(middlewares ...Middleware) {
	s.middleware = append(s.middleware, middlewares...)
}

// Middleware returns the middleware added with Use, in order.
func (s *Server) Middleware() []Middleware {
	return append([]Middleware(nil), s.middleware...)
}

func (s *Server) serveOptions(opts []mcpgo.ServeOption) []mcpgo.ServeOption {
	if len(s.middleware) == 0 {
		return opts
	}
	return append([]mcpgo.ServeOption{mcpgo.WithMiddleware(s.middleware...)}, opts...)
}

// ServeStdio runs the server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context, opts ...mcpgo.ServeOption) error {
	return mcpgo.ServeStdio(ctx, s.srv, s.serveOptions(opts)...)
}

// ServeHTTP runs the server over HTTP with SSE.
func (s *Server) ServeHTTP(ctx context.Context, addr string, opts ...mcpgo.HTTPOption) error {
	return mcpgo.ServeHTTPWithMiddleware(ctx, s.srv, addr, opts, s.serveOptions(nil)...)
}

// AddTool registers a tool after the server was created.
func (s *Server) AddTool(t tool.Tool) error {
	if s.registry != nil {
		if err := s.registry.Register(t); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}
	s.registerTool(t)
	return nil
}
