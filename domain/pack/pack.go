// Package pack provides types for named tool collections.
package pack

import (
	"github.com/felixgeelhaar/graphs/domain/tool"
)

// Pack is a collection of related tools published together to a host.
type Pack struct {
	// Name is the unique identifier for the pack.
	Name string

	// Description explains what the pack provides.
	Description string

	// Version is the semantic version of the pack.
	Version string

	// Tools is the collection of tools in this pack.
	Tools []tool.Tool

	// Metadata holds additional pack information.
	Metadata map[string]string
}

// ToolNames returns the names of all tools in the pack.
func (p *Pack) ToolNames() []string {
	names := make([]string, len(p.Tools))
	for i, t := range p.Tools {
		names[i] = t.Name()
	}
	return names
}

// GetTool returns a tool by name from the pack.
func (p *Pack) GetTool(name string) (tool.Tool, bool) {
	for _, t := range p.Tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Validate checks that the pack is named and its tool names are unique.
func (p *Pack) Validate() error {
	if p.Name == "" {
		return ErrInvalidPack
	}
	seen := make(map[string]struct{}, len(p.Tools))
	for _, t := range p.Tools {
		if _, dup := seen[t.Name()]; dup {
			return ErrInvalidPack
		}
		seen[t.Name()] = struct{}{}
	}
	return nil
}

// Builder provides a fluent API for constructing packs.
type Builder struct {
	pack *Pack
}

// NewBuilder creates a new pack builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		pack: &Pack{
			Name:     name,
			Tools:    make([]tool.Tool, 0),
			Metadata: make(map[string]string),
		},
	}
}

// WithDescription sets the pack description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.pack.Description = desc
	return b
}

// WithVersion sets the pack version.
func (b *Builder) WithVersion(version string) *Builder {
	b.pack.Version = version
	return b
}

// AddTools adds tools to the pack.
func (b *Builder) AddTools(tools ...tool.Tool) *Builder {
	b.pack.Tools = append(b.pack.Tools, tools...)
	return b
}

// WithMetadata adds metadata to the pack.
func (b *Builder) WithMetadata(key, value string) *Builder {
	b.pack.Metadata[key] = value
	return b
}

// Build returns the constructed pack.
func (b *Builder) Build() *Pack {
	return b.pack
}
