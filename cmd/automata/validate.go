package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
	"github.com/automatalab/automata/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every machine definition for consistency",
	Long:  `Loads and compiles every known machine, then crawls each transition graph and reports ambiguous rules and unreachable states.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All definitions are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	opts := sharedOptions(cmd)
	engine, err := cli.NewEngine(opts, cli.NewLogger(opts))
	if err != nil {
		return err
	}

	reports, err := validator.ValidateAll(engine.Loader())
	for _, report := range reports {
		if !report.OK() {
			fmt.Printf("%s: INVALID (%v)\n", report.Name, report.Err)
			continue
		}
		fmt.Printf("%s: ok\n", report.Name)
		for _, w := range report.Warnings {
			fmt.Printf("  warning: %s\n", w.String())
		}
		if len(report.Unreachable) > 0 {
			fmt.Printf("  unreachable states: %s\n", strings.Join(report.Unreachable, ", "))
		}
	}
	return err
}
