package schema

import (
	"slices"
	"testing"
)

// TestCheckRegistry validates the structural invariants of the whole
// catalogue: unique siblings, no defaults on required fields, non-empty
// enums.
func TestCheckRegistry(t *testing.T) {
	if err := CheckRegistry(); err != nil {
		t.Fatalf("registry invariant violated: %v", err)
	}
}

// TestCatalogueComplete checks every schema the pipelines produce is
// registered.
func TestCatalogueComplete(t *testing.T) {
	expected := []string{
		// red-team family
		"attacker", "strategy", "context", "grounding", "report",
		"pr_report", "diff_analysis",
		"fix_planner", "fix_coordinator", "fix_orchestrator",
		"fix_reader", "fix_planner_v2", "fix_red_teamer", "fix_applicator",
		"fix_committer", "fix_validator", "fix_phase_coordinator",
		// context-optimization family
		"plugin_analysis", "plan_analysis", "context_flow_map",
		"context_improvement", "orchestration_improvement", "handoff_improvement",
		"improvement_report", "challenge",
		// grounding agents, explicit selection only
		"pattern_compliance", "token_estimate", "consistency_check", "risk_assessment",
	}
	names := Names()
	for _, want := range expected {
		if !slices.Contains(names, want) {
			t.Errorf("schema %q missing from catalogue", want)
		}
	}
	if !slices.IsSorted(names) {
		t.Error("Names() must be sorted")
	}
}

// TestGetUnknown checks lookup of an unregistered name reports not-found
// rather than failing.
func TestGetUnknown(t *testing.T) {
	if _, ok := Get("no-such-schema"); ok {
		t.Error("expected not-found for unregistered name")
	}
}
