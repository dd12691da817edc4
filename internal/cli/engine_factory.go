// Package cli holds the command logic shared by the automata binary so
// the cobra layer stays a thin flag-parsing shell.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/automatalab/automata"
	"github.com/automatalab/automata/internal/adapters/file"
	"github.com/automatalab/automata/internal/logging"
)

// Options carries the configuration every command shares.
type Options struct {
	Dir   string // directory of YAML definitions; empty selects the builtin machines
	Debug bool
}

// NewLogger creates the CLI logger at the level the flags ask for.
func NewLogger(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// NewEngine initializes an engine with standard CLI conventions: the
// builtin registry by default, or a file loader when --dir is given.
func NewEngine(opts Options, logger *slog.Logger) (*automata.Engine, error) {
	engineOpts := []automata.Option{automata.WithLogger(logger)}

	if opts.Dir != "" {
		loader, err := file.NewLoader(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("open definitions directory: %w", err)
		}
		engineOpts = append(engineOpts, automata.WithLoader(loader))
	}

	return automata.New(engineOpts...), nil
}
