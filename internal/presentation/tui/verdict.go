package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/automatalab/automata/pkg/domain"
)

// Verdict formats the outcome of a run for the terminal. Accepted runs
// render green, rejected and errored runs render red.
func Verdict(input string, res *domain.Result) string {
	p := termenv.ColorProfile()

	if res.Err != nil {
		msg := fmt.Sprintf("The string %q could not be processed: %s.", input, res.Err.Error())
		return termenv.String(msg).Foreground(p.Color("#ff5555")).String()
	}
	if res.Accepted {
		msg := fmt.Sprintf("The string %q is ACCEPTED by the DFA.", input)
		return termenv.String(msg).Foreground(p.Color("#50fa7b")).String()
	}
	msg := fmt.Sprintf("The string %q is REJECTED by the DFA.", input)
	return termenv.String(msg).Foreground(p.Color("#ff5555")).String()
}
