package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentgate/agentgate/pkg/hook"
)

// The hook and gate commands always exit 0: the retry harness reads the
// decision record from stdout, not the process status.

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Process a PostToolUse envelope from stdin",
	Long:  "Reads the host's PostToolUse JSON envelope from stdin, validates known sub-agent Task output, and prints a decision record.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(hook.Run(os.Stdin))
	},
}

var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Validate bare agent output from stdin",
	Long:  "Reads raw agent output text from stdin, auto-detects its schema, and prints a decision record.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Print(hook.Gate(""))
			return
		}
		fmt.Print(hook.Gate(string(data)))
	},
}
