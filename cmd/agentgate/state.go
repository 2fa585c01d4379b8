package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agentgate/agentgate/pkg/state"
)

var (
	statePlugin  string
	stateFocus   string
	stateMode    string
	stateRequest string
	stateField   string
	stateHolder  string
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Manage the shared session state file",
}

var stateInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new session state file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.New(state.Config{
			PluginPath:  statePlugin,
			FocusArea:   stateFocus,
			Mode:        stateMode,
			UserRequest: stateRequest,
			SessionID:   uuid.NewString(),
		})
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		store := state.NewStore(statePlugin)
		if err := store.Init(s); err != nil {
			fmt.Println(err)
			return errExit
		}
		fmt.Printf("initialized state file: %s\n", store.Path())
		fmt.Printf("session id: %s\n", s.Immutable.SessionID)
		return nil
	},
}

var stateReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the session state (or one half of it)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := state.NewStore(statePlugin)
		s, err := store.Read()
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		var out any
		switch stateField {
		case "":
			out = s
		case "immutable":
			out = s.Immutable
		case "mutable":
			out = s.Mutable
		default:
			fmt.Printf("unknown field %q (supported: immutable, mutable)\n", stateField)
			return errExit
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		fmt.Print(string(data))
		return nil
	},
}

var stateUpdateCmd = &cobra.Command{
	Use:   "update <field> <json-value>",
	Short: "Replace one mutable field with a JSON value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value any
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			fmt.Printf("invalid JSON: %v\n", err)
			return errExit
		}
		store := state.NewStore(statePlugin)
		s, err := store.Update(func(s *state.SessionState) error {
			return s.SetField(args[0], value)
		})
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		fmt.Printf("updated %s\n", args[0])
		fmt.Printf("new version: %d\n", s.Version)
		return nil
	},
}

var stateLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Record a lock holder on the session state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := state.NewStore(statePlugin)
		s, err := store.Lock(stateHolder)
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		fmt.Printf("lock acquired by: %s\n", s.LockHolder)
		return nil
	},
}

var stateUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Clear the recorded lock holder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := state.NewStore(statePlugin)
		_, previous, err := store.Unlock()
		if err != nil {
			fmt.Println(err)
			return errExit
		}
		if previous == "" {
			fmt.Println("no lock to release")
			return nil
		}
		fmt.Printf("lock released from: %s\n", previous)
		return nil
	},
}

func init() {
	stateCmd.PersistentFlags().StringVar(&statePlugin, "plugin", ".", "plugin directory holding the state file")
	stateInitCmd.Flags().StringVar(&stateFocus, "focus", state.FocusAll, "analysis focus area (all, context, orchestration, handoff)")
	stateInitCmd.Flags().StringVar(&stateMode, "mode", state.ModeStandard, "analysis mode (quick, standard, deep)")
	stateInitCmd.Flags().StringVar(&stateRequest, "request", "", "original user request")
	stateReadCmd.Flags().StringVar(&stateField, "field", "", "read only one half of the record (immutable, mutable)")
	stateLockCmd.Flags().StringVar(&stateHolder, "holder", "", "agent name recorded as lock holder")

	stateCmd.AddCommand(stateInitCmd)
	stateCmd.AddCommand(stateReadCmd)
	stateCmd.AddCommand(stateUpdateCmd)
	stateCmd.AddCommand(stateLockCmd)
	stateCmd.AddCommand(stateUnlockCmd)
}
