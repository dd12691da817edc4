package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine> <input>...",
	Short: "Simulate input strings and print the traces",
	Long:  `Runs each input string through the named machine and prints every state the machine visits, ending with the verdict.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		machine, inputs, err := machineArgs(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(inputs) == 0 {
			fmt.Println("Error: no input strings given")
			os.Exit(1)
		}
		jsonMode, _ := cmd.Flags().GetBool("json")

		opts := cli.RunOptions{
			Options: sharedOptions(cmd),
			Machine: machine,
			Inputs:  inputs,
			JSON:    jsonMode,
		}
		if err := cli.Run(os.Stdout, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print each result as a JSON document")
}
