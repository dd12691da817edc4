package domain

import (
	"fmt"
)

// Rule declares a single transition: reading symbol On in state From
// moves the machine to state To.
type Rule struct {
	From string `json:"from" yaml:"from"`
	On   string `json:"on" yaml:"on"`
	To   string `json:"to" yaml:"to"`
}

// transitionKey indexes the compiled transition table.
type transitionKey struct {
	state  string
	symbol rune
}

// Warning records a non-fatal finding from compilation, e.g. a duplicate
// rule whose earlier target was overridden.
type Warning struct {
	From string `json:"from"`
	On   string `json:"on"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

func (w Warning) String() string {
	return fmt.Sprintf("duplicate rule (%s, %s): target %q overridden by %q", w.From, w.On, w.Old, w.New)
}

// Definition is the declarative description of one DFA.
//
// The exported fields are the authoring surface (YAML/JSON). Compile
// builds the lookup structures; after a successful Compile the
// Definition must not be mutated.
type Definition struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Pattern is the regular expression this machine recognizes,
	// carried for display only.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Notes holds markdown shown by `automata describe` (e.g. example
	// strings).
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	States   []string `json:"states" yaml:"states"`
	Alphabet []string `json:"alphabet" yaml:"alphabet"`
	Start    string   `json:"start" yaml:"start"`
	Accept   []string `json:"accept" yaml:"accept"`

	// Rules is an ordered list. Duplicate (from, on) pairs are legal:
	// the last one wins, and the conflict is reported as a Warning.
	Rules []Rule `json:"rules" yaml:"rules"`

	states   map[string]bool
	alphabet map[rune]bool
	accept   map[string]bool
	index    map[transitionKey]string
	warnings []Warning
	compiled bool
}

// Compile validates the definition and builds the transition index.
//
// Structural problems (undeclared states, symbols outside the alphabet,
// a start state that is not declared) are configuration errors and fail
// compilation with an AggregateError. Duplicate rules with diverging
// targets are resolved last-write-wins and recorded as Warnings.
//
// Gaps in the table are allowed: a missing (state, symbol) pair is a
// per-run "no transition" condition, not a definition error.
func (d *Definition) Compile() error {
	var errs []error

	fail := func(field, reason string) {
		errs = append(errs, &DefinitionError{Definition: d.Name, Field: field, Reason: reason})
	}

	if len(d.States) == 0 {
		fail("states", "must not be empty")
	}

	states := make(map[string]bool, len(d.States))
	for _, s := range d.States {
		if s == "" {
			fail("states", "empty state identifier")
			continue
		}
		states[s] = true
	}

	alphabet := make(map[rune]bool, len(d.Alphabet))
	for i, sym := range d.Alphabet {
		r, ok := singleRune(sym)
		if !ok {
			fail(fmt.Sprintf("alphabet[%d]", i), fmt.Sprintf("symbol %q must be a single character", sym))
			continue
		}
		alphabet[r] = true
	}
	if len(alphabet) == 0 {
		fail("alphabet", "must not be empty")
	}

	if !states[d.Start] {
		fail("start", fmt.Sprintf("state %q is not declared", d.Start))
	}

	accept := make(map[string]bool, len(d.Accept))
	for i, s := range d.Accept {
		if !states[s] {
			fail(fmt.Sprintf("accept[%d]", i), fmt.Sprintf("state %q is not declared", s))
			continue
		}
		accept[s] = true
	}

	index := make(map[transitionKey]string, len(d.Rules))
	var warnings []Warning
	for i, rule := range d.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		r, ok := singleRune(rule.On)
		if !ok {
			fail(field, fmt.Sprintf("symbol %q must be a single character", rule.On))
			continue
		}
		if !states[rule.From] {
			fail(field, fmt.Sprintf("source state %q is not declared", rule.From))
			continue
		}
		if !states[rule.To] {
			fail(field, fmt.Sprintf("target state %q is not declared", rule.To))
			continue
		}
		if !alphabet[r] {
			fail(field, fmt.Sprintf("symbol %q is not in the alphabet", rule.On))
			continue
		}

		key := transitionKey{state: rule.From, symbol: r}
		if prev, dup := index[key]; dup && prev != rule.To {
			warnings = append(warnings, Warning{From: rule.From, On: rule.On, Old: prev, New: rule.To})
		}
		index[key] = rule.To
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	d.states = states
	d.alphabet = alphabet
	d.accept = accept
	d.index = index
	d.warnings = warnings
	d.compiled = true
	return nil
}

// Compiled reports whether Compile has succeeded on this definition.
func (d *Definition) Compiled() bool {
	return d != nil && d.compiled
}

// Warnings returns the non-fatal findings recorded during Compile.
func (d *Definition) Warnings() []Warning {
	return d.warnings
}

// InAlphabet reports whether r is a declared input symbol.
func (d *Definition) InAlphabet(r rune) bool {
	return d.alphabet[r]
}

// Next looks up the transition for (state, symbol). The second return
// value is false when the table has no entry for the pair.
func (d *Definition) Next(state string, symbol rune) (string, bool) {
	to, ok := d.index[transitionKey{state: state, symbol: symbol}]
	return to, ok
}

// IsAccept reports whether state is an accept state.
func (d *Definition) IsAccept(state string) bool {
	return d.accept[state]
}

// HasState reports whether state is declared.
func (d *Definition) HasState(state string) bool {
	return d.states[state]
}

func singleRune(s string) (rune, bool) {
	var r rune
	n := 0
	for _, c := range s {
		r = c
		n++
	}
	if n != 1 {
		return 0, false
	}
	return r, true
}
