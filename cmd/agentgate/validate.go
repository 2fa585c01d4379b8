package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentgate/agentgate/pkg/extract"
	"github.com/agentgate/agentgate/pkg/report"
	"github.com/agentgate/agentgate/pkg/schema"
)

var (
	validateType   string
	validateStrict bool
	validateGate   string
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Validate agent output against its schema",
	Long:  "Validates structured agent output. The schema is auto-detected from root keys unless --type names one. Exit status 0 when valid; 1 otherwise.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		fmt.Println(err)
		return errExit
	}

	doc, err := extract.Document(text)
	if err != nil {
		fmt.Println(err)
		return errExit
	}

	name := validateType
	if name == "" {
		detected, ok := schema.Detect(doc)
		if !ok {
			fmt.Printf("cannot detect schema. Root keys: [%s]\n", strings.Join(rootKeysOf(doc), ", "))
			return errExit
		}
		name = detected
	}
	s, ok := schema.Get(name)
	if !ok {
		fmt.Printf("unknown schema %q (see 'agentgate schema list')\n", name)
		return errExit
	}

	errs := schema.Validate(s, doc)
	warns := schema.Lint(s, doc)
	if validateStrict && len(warns) > 0 {
		errs = append(errs, schema.Escalate(warns)...)
		warns = nil
	}

	fmt.Print(report.Verbose(errs, warns))

	pass := len(errs) == 0
	if validateGate != "" {
		pass, err = report.EvalGate(validateGate, report.GateEnv(len(errs), len(warns), len(errs) == 0, name))
		if err != nil {
			fmt.Println(err)
			return errExit
		}
	}
	if !pass {
		return errExit
	}
	return nil
}

var detectCmd = &cobra.Command{
	Use:   "detect [file|-]",
	Short: "Detect which schema an agent output matches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		doc, err := extract.Document(text)
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		name, ok := schema.Detect(doc)
		if !ok {
			fmt.Printf("cannot detect schema. Root keys: [%s]\n", strings.Join(rootKeysOf(doc), ", "))
			return errExit
		}
		fmt.Println(name)
		return nil
	},
}

func rootKeysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	validateCmd.Flags().StringVar(&validateType, "type", "", "schema name (skips auto-detection)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "escalate warnings to failures")
	validateCmd.Flags().StringVar(&validateGate, "gate", "", "boolean expression over errors/warnings/valid/schema that overrides the pass decision")
}
