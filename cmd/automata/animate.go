package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
)

// animateCmd represents the animate command
var animateCmd = &cobra.Command{
	Use:   "animate <machine> <input>",
	Short: "Replay a simulation step by step",
	Long:  `Runs the simulation and replays the trace one step at a time, with a pointer tracking the input symbol being read. Ctrl-C stops the replay.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		machine, rest, err := machineArgs(cmd, args)
		if err != nil || len(rest) != 1 {
			fmt.Println("Error: animate needs a machine and exactly one input string")
			os.Exit(1)
		}
		delay, _ := cmd.Flags().GetDuration("delay")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := cli.AnimateOptions{
			Options: sharedOptions(cmd),
			Machine: machine,
			Input:   rest[0],
			Delay:   delay,
		}
		if err := cli.Animate(ctx, os.Stdout, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().DurationP("delay", "d", 500*time.Millisecond, "Pause between replayed steps")
}
