package cli

import (
	"context"
	"io"
	"time"

	"github.com/automatalab/automata/internal/presentation/tui"
)

// AnimateOptions contains the configuration for the animate command.
type AnimateOptions struct {
	Options
	Machine string
	Input   string
	Delay   time.Duration
}

// Animate runs the simulation up front and replays the trace one step
// per delay. Canceling ctx (Ctrl-C) stops the playback, not the
// simulation, which has already finished by then.
func Animate(ctx context.Context, out io.Writer, opts AnimateOptions) error {
	logger := NewLogger(opts.Options)
	engine, err := NewEngine(opts.Options, logger)
	if err != nil {
		return err
	}

	res, err := engine.Simulate(opts.Machine, opts.Input)
	if err != nil {
		return err
	}

	return tui.NewPlayback(out, opts.Delay).Run(ctx, res, opts.Input)
}
