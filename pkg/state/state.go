// Package state manages the shared session record sub-agents use to pass
// configuration and intermediate results without full context handoffs.
package state

import (
	"fmt"
	"slices"
)

// Focus areas for an analysis session.
const (
	FocusAll           = "all"
	FocusContext       = "context"
	FocusOrchestration = "orchestration"
	FocusHandoff       = "handoff"
)

// Analysis depth modes.
const (
	ModeQuick    = "quick"
	ModeStandard = "standard"
	ModeDeep     = "deep"
)

var focusAreas = []string{FocusAll, FocusContext, FocusOrchestration, FocusHandoff}
var modes = []string{ModeQuick, ModeStandard, ModeDeep}

// FileRef is a cached file reference with optional loaded content.
type FileRef struct {
	ID            string `yaml:"id" json:"id"`
	Path          string `yaml:"path" json:"path"`
	Loaded        bool   `yaml:"loaded" json:"loaded"`
	Content       string `yaml:"content,omitempty" json:"content,omitempty"`
	TokenEstimate int    `yaml:"token_estimate" json:"token_estimate"`
}

// Config is the immutable session configuration set at init and never
// modified afterwards.
type Config struct {
	PluginPath  string `yaml:"plugin_path" json:"plugin_path"`
	FocusArea   string `yaml:"focus_area" json:"focus_area"`
	Mode        string `yaml:"mode" json:"mode"`
	UserRequest string `yaml:"user_request" json:"user_request"`
	SessionID   string `yaml:"session_id" json:"session_id"`
}

// Results is the mutable half of the session record.
type Results struct {
	FileCache           map[string]FileRef `yaml:"file_cache" json:"file_cache"`
	IntermediateResults map[string]any     `yaml:"intermediate_results" json:"intermediate_results"`
	PhaseCompleted      []string           `yaml:"phase_completed" json:"phase_completed"`
	UserSelections      map[string]any     `yaml:"user_selections" json:"user_selections"`
}

// SessionState is the complete session record. Version increments on every
// successful write so readers can detect concurrent modification.
type SessionState struct {
	Immutable  Config  `yaml:"immutable" json:"immutable"`
	Mutable    Results `yaml:"mutable" json:"mutable"`
	LockHolder string  `yaml:"lock_holder,omitempty" json:"lock_holder,omitempty"`
	Version    int     `yaml:"version" json:"version"`
}

// New builds a fresh session record at version 1.
func New(cfg Config) (*SessionState, error) {
	if !slices.Contains(focusAreas, cfg.FocusArea) {
		return nil, fmt.Errorf("invalid focus area %q", cfg.FocusArea)
	}
	if !slices.Contains(modes, cfg.Mode) {
		return nil, fmt.Errorf("invalid mode %q", cfg.Mode)
	}
	return &SessionState{
		Immutable: cfg,
		Mutable: Results{
			FileCache:           map[string]FileRef{},
			IntermediateResults: map[string]any{},
			PhaseCompleted:      []string{},
			UserSelections:      map[string]any{},
		},
		Version: 1,
	}, nil
}

// SetField replaces one mutable field with a decoded JSON value. The field
// name matches the record's serialized keys.
func (s *SessionState) SetField(field string, value any) error {
	switch field {
	case "file_cache":
		cache := map[string]FileRef{}
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("file_cache must be a mapping")
		}
		for id, raw := range m {
			ref, err := fileRefFrom(raw)
			if err != nil {
				return fmt.Errorf("file_cache[%s]: %w", id, err)
			}
			cache[id] = ref
		}
		s.Mutable.FileCache = cache
	case "intermediate_results":
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("intermediate_results must be a mapping")
		}
		s.Mutable.IntermediateResults = m
	case "phase_completed":
		items, ok := value.([]any)
		if !ok {
			return fmt.Errorf("phase_completed must be a list")
		}
		phases := make([]string, 0, len(items))
		for _, item := range items {
			phase, ok := item.(string)
			if !ok {
				return fmt.Errorf("phase_completed entries must be strings")
			}
			phases = append(phases, phase)
		}
		s.Mutable.PhaseCompleted = phases
	case "user_selections":
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("user_selections must be a mapping")
		}
		s.Mutable.UserSelections = m
	default:
		return fmt.Errorf("unknown mutable field %q", field)
	}
	return nil
}

func fileRefFrom(raw any) (FileRef, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return FileRef{}, fmt.Errorf("expected mapping")
	}
	var ref FileRef
	if ref.ID, ok = m["id"].(string); !ok {
		return FileRef{}, fmt.Errorf("missing or invalid 'id'")
	}
	if ref.Path, ok = m["path"].(string); !ok {
		return FileRef{}, fmt.Errorf("missing or invalid 'path'")
	}
	ref.Loaded, _ = m["loaded"].(bool)
	ref.Content, _ = m["content"].(string)
	switch n := m["token_estimate"].(type) {
	case int:
		ref.TokenEstimate = n
	case float64:
		ref.TokenEstimate = int(n)
	}
	return ref, nil
}
