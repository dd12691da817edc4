package domain

// Step is one entry in a simulation trace: the state reached and the
// symbol that was consumed to reach it. The initial step carries an
// empty Symbol, since no input was read to enter the start state.
type Step struct {
	State  string `json:"state" yaml:"state"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Trace is the ordered record of one simulation run. It is allocated
// fresh per run and never mutated afterwards.
//
// Invariant: len(trace) == 1 + number of symbols consumed.
type Trace []Step

// Final returns the last state reached.
func (t Trace) Final() string {
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1].State
}

// Consumed returns the number of input symbols successfully consumed.
func (t Trace) Consumed() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}
