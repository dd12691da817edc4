// Package runtime hosts the simulation engine: a single-pass,
// deterministic walk of a compiled transition table.
package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/automatalab/automata/pkg/domain"
)

// Engine replays input strings through compiled definitions. It holds no
// per-run state; Simulate is safe to call concurrently.
type Engine struct {
	logger *slog.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets a structured logger for per-step debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. Without options it logs nowhere.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Simulate walks input through def and returns the full trace plus
// verdict in one pass.
//
// The returned error only signals misuse (nil or uncompiled definition).
// Per-run failures, a symbol outside the alphabet or a gap in the
// transition table, are reported inside the Result together with the
// partial trace, never as a Go error: callers need both the reason and
// the path walked so far.
//
// The engine does not stop early on trap states. As long as every symbol
// has a defined transition it consumes the entire input and only then
// checks the final state against the accept set.
func (e *Engine) Simulate(def *domain.Definition, input string) (*domain.Result, error) {
	if def == nil || !def.Compiled() {
		return nil, fmt.Errorf("definition is nil or not compiled")
	}

	current := def.Start
	trace := domain.Trace{{State: current}}

	pos := 0
	var simErr *domain.SimulationError
	for _, sym := range input {
		if !def.InAlphabet(sym) {
			simErr = &domain.SimulationError{
				Kind:     domain.KindInvalidSymbol,
				Symbol:   string(sym),
				Position: pos,
				State:    current,
			}
			break
		}

		next, ok := def.Next(current, sym)
		if !ok {
			simErr = &domain.SimulationError{
				Kind:     domain.KindNoTransition,
				Symbol:   string(sym),
				Position: pos,
				State:    current,
			}
			break
		}

		e.logger.Debug("step",
			"machine", def.Name,
			"state", current,
			"symbol", string(sym),
			"next", next,
		)

		trace = append(trace, domain.Step{State: next, Symbol: string(sym)})
		current = next
		pos++
	}

	result := &domain.Result{
		Trace: trace,
		Err:   simErr,
	}
	if simErr == nil {
		result.Accepted = def.IsAccept(current)
	}
	return result, nil
}
