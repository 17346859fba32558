package pack

import (
	"github.com/felixgeelhaar/graphs/domain/tool"
)

// Registry manages a collection of packs.
type Registry interface {
	// Register adds a pack to the registry.
	Register(pack *Pack) error

	// Get retrieves a pack by name.
	Get(name string) (*Pack, bool)

	// List returns all registered packs.
	List() []*Pack

	// Install copies a pack's tools into a tool registry.
	Install(name string, toolReg tool.Registry) error
}
