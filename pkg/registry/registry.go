// Package registry provides an in-memory, name-keyed store of machine
// definitions, including the two stock machines the simulator ships
// with.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/automatalab/automata/pkg/domain"
)

// Registry implements ports.DefinitionLoader over a map.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*domain.Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		defs: make(map[string]*domain.Definition),
	}
}

// Register compiles (if needed) and adds a definition. A definition with
// the same name is overwritten.
func (r *Registry) Register(def *domain.Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("definition missing name")
	}
	if !def.Compiled() {
		if err := def.Compile(); err != nil {
			return fmt.Errorf("compile %s: %w", def.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
	return nil
}

// Get returns the definition for name.
func (r *Registry) Get(name string) (*domain.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return def, nil
}

// List returns all registered names, sorted for deterministic output.
func (r *Registry) List() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
