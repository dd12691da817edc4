package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
	"github.com/automatalab/automata/internal/presentation/tui"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Show a machine's documentation page",
	Long:  `Renders the machine's label, pattern and authored notes as terminal markdown.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		machine, _, err := machineArgs(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := sharedOptions(cmd)
		engine, err := cli.NewEngine(opts, cli.NewLogger(opts))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		def, err := engine.Definition(machine)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		page, err := tui.Describe(def)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(page)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
