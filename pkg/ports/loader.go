package ports

import "github.com/automatalab/automata/pkg/domain"

// DefinitionLoader resolves machine definitions by name. Implementations
// must return compiled, immutable definitions; callers share them
// read-only across simulation runs.
type DefinitionLoader interface {
	// Get returns the compiled definition for name, or
	// domain.ErrNotFound when the name is unknown.
	Get(name string) (*domain.Definition, error)

	// List returns the available definition names in stable order.
	List() ([]string, error)
}
