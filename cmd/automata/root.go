package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatalab/automata/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata simulates deterministic finite automata",
	Long: `Automata runs input strings through deterministic finite automata,
printing the full state trace and the accept/reject verdict. It ships
two classic machines and loads custom ones from YAML files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory with YAML machine definitions (builtin machines when unset)")
	rootCmd.PersistentFlags().StringP("machine", "m", "", "Machine to operate on (falls back to the first positional argument)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// machineArgs resolves the machine name from the --machine flag,
// falling back to the first positional argument. The remaining
// arguments are returned untouched.
func machineArgs(cmd *cobra.Command, args []string) (string, []string, error) {
	machine, _ := cmd.Flags().GetString("machine")
	if machine != "" {
		return machine, args, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("no machine selected (pass a name or use --machine)")
	}
	return args[0], args[1:], nil
}

// sharedOptions reads the persistent flags every command honors.
func sharedOptions(cmd *cobra.Command) cli.Options {
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{Dir: dir, Debug: debug}
}
