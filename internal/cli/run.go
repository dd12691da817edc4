package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/automatalab/automata/internal/presentation/tui"
	"github.com/automatalab/automata/pkg/domain"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	Options
	Machine string
	Inputs  []string
	JSON    bool
}

// runResult is the JSON shape of a single simulation run.
type runResult struct {
	Machine  string                  `json:"machine"`
	Input    string                  `json:"input"`
	Trace    domain.Trace            `json:"trace"`
	Accepted bool                    `json:"accepted"`
	Error    *domain.SimulationError `json:"error,omitempty"`
}

// Run simulates each input string through the selected machine and
// writes the traces plus verdicts to out, either as plain text or as a
// stream of JSON documents (one per input).
func Run(out io.Writer, opts RunOptions) error {
	logger := NewLogger(opts.Options)
	engine, err := NewEngine(opts.Options, logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	for _, input := range opts.Inputs {
		res, err := engine.Simulate(opts.Machine, input)
		if err != nil {
			return err
		}

		if opts.JSON {
			if err := enc.Encode(runResult{
				Machine:  opts.Machine,
				Input:    input,
				Trace:    res.Trace,
				Accepted: res.Accepted,
				Error:    res.Err,
			}); err != nil {
				return err
			}
			continue
		}

		for i, step := range res.Trace {
			if i == 0 {
				fmt.Fprintf(out, "start    state %s\n", step.State)
				continue
			}
			fmt.Fprintf(out, "read %q  state %s\n", step.Symbol, step.State)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.Verdict(input, res))
		fmt.Fprintln(out)
	}
	return nil
}
