package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available machines",
	Run: func(cmd *cobra.Command, args []string) {
		opts := sharedOptions(cmd)
		engine, err := cli.NewEngine(opts, cli.NewLogger(opts))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		names, err := engine.List()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
