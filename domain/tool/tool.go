package tool

import (
	"context"
	"encoding/json"
)

// Tool is a named function a host runtime can invoke with JSON arguments.
type Tool interface {
	// Name returns the stable identifier the host calls the tool by.
	Name() string

	// Description returns a human-readable summary.
	Description() string

	// InputSchema returns the JSON Schema describing the arguments.
	InputSchema() Schema

	// OutputSchema returns the JSON Schema describing the output.
	OutputSchema() Schema

	// Annotations returns the tool's behavioral annotations.
	Annotations() Annotations

	// Execute runs the tool with the given arguments.
	Execute(ctx context.Context, input json.RawMessage) (Result, error)
}

// Handler is the function signature for tool execution.
type Handler func(ctx context.Context, input json.RawMessage) (Result, error)

// Definition is a concrete implementation of Tool.
type Definition struct {
	name         string
	description  string
	inputSchema  Schema
	outputSchema Schema
	annotations  Annotations
	handler      Handler
}

// Name returns the tool name.
func (d *Definition) Name() string {
	return d.name
}

// Description returns the tool description.
func (d *Definition) Description() string {
	return d.description
}

// InputSchema returns the input schema.
func (d *Definition) InputSchema() Schema {
	return d.inputSchema
}

// OutputSchema returns the output schema.
func (d *Definition) OutputSchema() Schema {
	return d.outputSchema
}

// Annotations returns the tool annotations.
func (d *Definition) Annotations() Annotations {
	return d.annotations
}

// Execute runs the tool handler.
func (d *Definition) Execute(ctx context.Context, input json.RawMessage) (Result, error) {
	if d.handler == nil {
		return Result{}, ErrNoHandler
	}
	return d.handler(ctx, input)
}

// Builder provides a fluent API for constructing tools.
type Builder struct {
	def *Definition
}

// NewBuilder creates a new tool builder with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		def: &Definition{
			name:        name,
			annotations: DefaultAnnotations(),
		},
	}
}

// WithDescription sets the tool description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.def.description = desc
	return b
}

// WithInputSchema sets the input schema.
func (b *Builder) WithInputSchema(schema Schema) *Builder {
	b.def.inputSchema = schema
	return b
}

// WithOutputSchema sets the output schema.
func (b *Builder) WithOutputSchema(schema Schema) *Builder {
	b.def.outputSchema = schema
	return b
}

// ReadOnly marks the tool as free of side effects.
func (b *Builder) ReadOnly() *Builder {
	b.def.annotations.ReadOnly = true
	b.def.annotations.WritesFiles = false
	return b
}

// Idempotent marks repeated calls with the same input as equivalent.
func (b *Builder) Idempotent() *Builder {
	b.def.annotations.Idempotent = true
	return b
}

// WritesFiles marks the tool as producing files on disk.
func (b *Builder) WritesFiles() *Builder {
	b.def.annotations.WritesFiles = true
	b.def.annotations.ReadOnly = false
	return b
}

// OpensViewer marks the tool as launching an external application.
func (b *Builder) OpensViewer() *Builder {
	b.def.annotations.OpensViewer = true
	return b
}

// WithTags adds tags to the tool.
func (b *Builder) WithTags(tags ...string) *Builder {
	b.def.annotations.Tags = append(b.def.annotations.Tags, tags...)
	return b
}

// WithHandler sets the tool handler function.
func (b *Builder) WithHandler(handler Handler) *Builder {
	b.def.handler = handler
	return b
}

// Build constructs the tool definition.
func (b *Builder) Build() (Tool, error) {
	if b.def.name == "" {
		return nil, ErrEmptyName
	}
	if b.def.handler == nil {
		return nil, ErrNoHandler
	}
	return b.def, nil
}

// MustBuild constructs the tool definition or panics on error.
func (b *Builder) MustBuild() Tool {
	tool, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tool
}
