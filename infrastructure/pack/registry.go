// Package pack provides the in-memory pack registry.
package pack

import (
	"fmt"
	"sort"
	"sync"

	"github.com/felixgeelhaar/graphs/domain/pack"
	"github.com/felixgeelhaar/graphs/domain/tool"
)

// Registry is an in-memory pack registry.
type Registry struct {
	packs map[string]*pack.Pack
	mu    sync.RWMutex
}

// NewRegistry creates a new pack registry.
func NewRegistry() *Registry {
	return &Registry{
		packs: make(map[string]*pack.Pack),
	}
}

// Register adds a pack to the registry.
func (r *Registry) Register(p *pack.Pack) error {
	if p == nil {
		return pack.ErrInvalidPack
	}
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packs[p.Name]; exists {
		return fmt.Errorf("%w: %s", pack.ErrPackExists, p.Name)
	}

	r.packs[p.Name] = p
	return nil
}

// Get retrieves a pack by name.
func (r *Registry) Get(name string) (*pack.Pack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[name]
	return p, ok
}

// List returns all registered packs sorted by name.
func (r *Registry) List() []*pack.Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*pack.Pack, 0, len(r.packs))
	for _, p := range r.packs {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Install registers a pack's tools with a tool registry. Tools whose names
// are already registered are left in place.
func (r *Registry) Install(name string, toolReg tool.Registry) error {
	p, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", pack.ErrPackNotFound, name)
	}

	for _, t := range p.Tools {
		if toolReg.Has(t.Name()) {
			continue
		}
		if err := toolReg.Register(t); err != nil {
			return fmt.Errorf("install %s/%s: %w", name, t.Name(), err)
		}
	}
	return nil
}

// Len returns the number of registered packs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packs)
}

var _ pack.Registry = (*Registry)(nil)
