// Package cli implements the cobra-based CLI commands for color-pour.
//
// The root command runs a pour session; the validate subcommand checks a
// scenario file without running it. This file defines the root command,
// the global flags, and exit-code handling.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/color-pour/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables trace output on stderr.
	verbose bool

	// logOutput receives VerboseLog output. NewRootCommand points it at
	// the command's stderr before any subcommand runs.
	logOutput io.Writer = os.Stderr
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Without flags the root command runs the built-in session: three
// containers seeded Red, Green and Blue, then pours 0->1 and 1->2.
func NewRootCommand() *cobra.Command {
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "color-pour",
		Short: "Pour colored elements between bounded containers",
		Long: `color-pour seeds a set of fixed-capacity containers with colored elements,
displays them, attempts a sequence of pours, and displays them again.

A pour moves the top element of one container onto another. Pours into the
same container, from an empty container, or into a full container are
reported and leave every container unchanged.

Examples:
  color-pour
  color-pour --pour 0->1 --pour 0->2
  color-pour --scenario session.yaml --json`,

		Args: cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOutput = cmd.ErrOrStderr()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.OutOrStdout(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVar(&flags.scenarioPath, "scenario", "",
		"Scenario file (.json, .jsonc, .yaml, .yml) to run instead of the built-in session")
	rootCmd.Flags().StringArrayVar(&flags.pours, "pour", nil,
		"Pour to attempt, as from->to (repeatable; replaces the scenario's pours)")

	rootCmd.AddCommand(NewValidateCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// CLIError types carry their own exit codes; other errors default to 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message on stderr in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(logOutput, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
