package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentgate/agentgate/pkg/schema"
	"github.com/agentgate/agentgate/pkg/state"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect the schema catalogue",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := schema.CheckRegistry(); err != nil {
			fmt.Println(err)
			return errExit
		}
		for _, name := range schema.Names() {
			s, _ := schema.Get(name)
			if s.Doc != "" {
				fmt.Printf("%-26s v%d  %s\n", name, s.Version, s.Doc)
			} else {
				fmt.Printf("%-26s v%d\n", name, s.Version)
			}
		}
		return nil
	},
}

var schemaExportType string

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a JSON Schema document",
	Long:  "Exports the JSON Schema for an exportable record type. Currently only the session state record (--type state).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch schemaExportType {
		case "state":
			data, err := state.GenerateJSONSchema()
			if err != nil {
				fmt.Println(err)
				return errExit
			}
			fmt.Println(string(data))
			return nil
		default:
			fmt.Printf("unknown export type %q (supported: state)\n", schemaExportType)
			return errExit
		}
	},
}

func init() {
	schemaExportCmd.Flags().StringVar(&schemaExportType, "type", "state", "record type to export")
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaExportCmd)
}
