package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by loaders when a definition name is unknown.
var ErrNotFound = errors.New("definition not found")

// ErrorKind distinguishes the two ways a simulation run can fail.
type ErrorKind string

const (
	// KindInvalidSymbol: the input contains a character outside the
	// machine's alphabet (malformed input).
	KindInvalidSymbol ErrorKind = "invalid_symbol"
	// KindNoTransition: the symbol is in the alphabet but the current
	// state has no entry for it (the table is a partial function).
	KindNoTransition ErrorKind = "no_transition"
)

// SimulationError describes why a run stopped before consuming the whole
// input. It is carried inside Result, never raised as a panic.
type SimulationError struct {
	Kind     ErrorKind `json:"kind"`
	Symbol   string    `json:"symbol"`
	Position int       `json:"position"`
	State    string    `json:"state"`
}

func (e *SimulationError) Error() string {
	switch e.Kind {
	case KindInvalidSymbol:
		return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Position)
	case KindNoTransition:
		return fmt.Sprintf("no transition from %s on %q at position %d", e.State, e.Symbol, e.Position)
	}
	return fmt.Sprintf("simulation error at position %d", e.Position)
}

// DefinitionError represents a single structural problem found while
// compiling a definition.
type DefinitionError struct {
	Definition string // machine name, may be empty
	Field      string // e.g. "start", "rules[3]"
	Reason     string
}

func (e *DefinitionError) Error() string {
	if e.Definition == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Definition, e.Field, e.Reason)
}

// AggregateError bundles multiple definition errors so a malformed table
// is reported in full instead of one finding at a time.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d definition errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// DefinitionErrors unwraps err into its individual findings if it is an
// AggregateError, otherwise returns nil.
func DefinitionErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
