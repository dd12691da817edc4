/*
Package automata is a deterministic finite automaton (DFA) simulator for
teaching formal languages. It replays an input string through a
hand-authored transition table and reports acceptance together with the
full sequence of states visited.

# Concept

A machine is described declaratively (states, alphabet, transition
rules, start and accept states), compiled once, and then shared
read-only by any number of simulation runs. A run is a pure function of
(definition, input): it walks the table in a single pass, collects a
trace of (state, symbol) steps, and either consumes the whole input or
stops at the first malformed symbol or table gap, returning the partial
trace with a structured error. Presentation concerns such as diagrams,
step-by-step playback and the HTTP API live in adapters that consume the
already-computed trace.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/automatalab/automata"
	)

	func main() {
		// The default engine serves the two stock machines "ab" and "01".
		eng := automata.New()

		res, err := eng.Simulate("ab", "aabbbabaaabbbbaaaaaaaabbbab")
		if err != nil {
			log.Fatal(err)
		}

		for _, step := range res.Trace {
			fmt.Println(step.State, step.Symbol)
		}
		fmt.Println("accepted:", res.Accepted)
	}

Custom machines can be loaded from a YAML directory via WithLoader and
the file adapter, or registered programmatically through pkg/registry.
*/
package automata
