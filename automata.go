package automata

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/automatalab/automata/internal/logging"
	"github.com/automatalab/automata/internal/runtime"
	"github.com/automatalab/automata/pkg/domain"
	"github.com/automatalab/automata/pkg/ports"
	"github.com/automatalab/automata/pkg/registry"
)

// Version is the released version of the simulator.
var Version = "0.3.0"

// Engine is the high-level entry point for the library. It wraps the
// internal runtime and a definition loader behind a simplified API.
type Engine struct {
	loader  ports.DefinitionLoader
	runtime *runtime.Engine
	logger  *slog.Logger
	warned  sync.Map // machine name -> warnings already logged
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom DefinitionLoader, bypassing the builtin
// machine registry.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine. Without options it serves the stock "ab"
// and "01" machines and logs nowhere.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.loader == nil {
		eng.loader = registry.Builtin()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.runtime = runtime.NewEngine(runtime.WithLogger(eng.logger))
	return eng
}

// List returns the names of the available machine definitions.
func (e *Engine) List() ([]string, error) {
	return e.loader.List()
}

// Definition resolves a machine by name. Compile warnings (duplicate
// rules resolved last-write-wins) are logged once per machine so
// callers see authoring ambiguities without failing the load and
// without re-logging on every run.
func (e *Engine) Definition(name string) (*domain.Definition, error) {
	def, err := e.loader.Get(name)
	if err != nil {
		return nil, err
	}
	if _, done := e.warned.LoadOrStore(def.Name, true); !done {
		for _, w := range def.Warnings() {
			e.logger.Warn("ambiguous transition table",
				"machine", def.Name,
				"warning", w.String(),
			)
		}
	}
	return def, nil
}

// Simulate runs input through the named machine and returns the full
// trace plus verdict. Malformed input and table gaps are reported inside
// the Result; the returned error covers unknown machine names only.
func (e *Engine) Simulate(name, input string) (*domain.Result, error) {
	def, err := e.Definition(name)
	if err != nil {
		return nil, err
	}
	res, err := e.runtime.Simulate(def, input)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", name, err)
	}
	return res, nil
}

// Loader returns the underlying DefinitionLoader used by the engine.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}
