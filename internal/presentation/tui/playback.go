package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/automatalab/automata/pkg/domain"
)

// Playback replays an already-computed trace step by step. The engine
// produces the whole trace atomically; pacing and interruption are
// purely presentation concerns, so stopping mid-animation is a context
// cancellation here, never an engine operation.
type Playback struct {
	out   io.Writer
	delay time.Duration
}

// NewPlayback creates a playback writing frames to out, one every
// delay. A zero delay renders all frames immediately.
func NewPlayback(out io.Writer, delay time.Duration) *Playback {
	return &Playback{out: out, delay: delay}
}

// Run animates the trace in res for the given input. The partial trace
// of an errored run plays as-is; the error is reported after the last
// completed step. Returns ctx.Err() when interrupted.
func (p *Playback) Run(ctx context.Context, res *domain.Result, input string) error {
	for i, step := range res.Trace {
		if i > 0 {
			if err := p.wait(ctx); err != nil {
				fmt.Fprintln(p.out, "Simulation stopped.")
				return err
			}
		}

		pos := 0
		if i > 0 {
			// The trace has an extra initial entry for the start state.
			pos = i - 1
		}
		fmt.Fprintln(p.out, Pointer(input, pos))

		if i == 0 {
			fmt.Fprintf(p.out, "Start at state %s\n\n", step.State)
		} else {
			fmt.Fprintf(p.out, "Read %q, move to state %s\n\n", step.Symbol, step.State)
		}
	}

	fmt.Fprintln(p.out, Verdict(input, res))
	return nil
}

func (p *Playback) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
