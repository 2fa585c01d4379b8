package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agentgate",
	Short: "Schema validation gate for sub-agent outputs",
	Long:  "agentgate — validates structured sub-agent output against the known schema catalogue and emits retry-harness decision records.",
	// Diagnostics go to stdout so the host tool reads a single stream;
	// cobra's own stderr reporting is disabled.
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agentgate %s (%s)\n", version, commit)
	},
}

// readInput reads the named file, or all of stdin for the "-" sentinel.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// errExit marks a command as failed without extra stderr output; everything
// the user needs was already printed to stdout.
var errExit = fmt.Errorf("failed")

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(versionCmd)
}
