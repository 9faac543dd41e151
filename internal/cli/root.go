package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "archon",
	Short: "LLM-driven software architecture review",
	Long: "Archon extracts a structured architecture model from a design document, " +
		"detects architectural risks and writes a review report using an LLM provider.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run() int {
	return run(nil)
}

// run executes the command tree with args, or os.Args when args is nil.
func run(args []string) int {
	exitCode = ExitSuccess
	if args != nil {
		rootCmd.SetArgs(args)
	}
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print archon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "archon version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)
}
