package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
	"github.com/automatalab/automata/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export the machine's transition diagram",
	Long:  `Outputs the transition diagram of the named machine as Mermaid (default) or Graphviz DOT.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		machine, _, err := machineArgs(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		format, _ := cmd.Flags().GetString("format")

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

		var output string
		switch format {
		case "mermaid":
			output = graph.GenerateMermaid(def, nil)
		case "dot":
			output = graph.GenerateDOT(def, nil)
		default:
			fmt.Printf("Error: unknown format %q (want mermaid or dot)\n", format)
			os.Exit(1)
		}
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("format", "f", "mermaid", "Diagram format: mermaid or dot")
}
