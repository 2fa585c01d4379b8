package schema

import "testing"

// TestDetectRootKeys checks one representative document per detectable
// schema round-trips through the detector.
func TestDetectRootKeys(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"attacker", map[string]any{"attack_results": map[string]any{}}},
		{"strategy", map[string]any{"attack_strategy": map[string]any{}}},
		{"context", map[string]any{"context_analysis": map[string]any{}}},
		{"grounding", map[string]any{"grounding_results": map[string]any{}}},
		{"diff_analysis", map[string]any{"diff_analysis": map[string]any{}}},
		{"fix_planner", map[string]any{"fix_plan": map[string]any{}}},
		{"fix_coordinator", map[string]any{"question_batches": []any{}}},
		{"fix_orchestrator", map[string]any{"execution_summary": map[string]any{}}},
		{"plugin_analysis", map[string]any{"plugin_analysis": map[string]any{}}},
		{"plan_analysis", map[string]any{"plan_analysis": map[string]any{}}},
		{"context_flow_map", map[string]any{"context_flow_map": map[string]any{}}},
		{"improvement_report", map[string]any{"improvement_report": map[string]any{}}},
		{"challenge", map[string]any{"challenge_assessments": []any{}}},
		{"report", map[string]any{"executive_summary": "everything is on fire"}},
	}
	for _, tc := range cases {
		got, ok := Detect(tc.doc)
		if !ok {
			t.Errorf("%s: detection failed", tc.name)
			continue
		}
		if got != tc.name {
			t.Errorf("%s: detected %q", tc.name, got)
		}
	}
}

// TestDetectUnknown checks empty and foreign mappings are not claimed.
func TestDetectUnknown(t *testing.T) {
	if name, ok := Detect(map[string]any{}); ok {
		t.Errorf("empty mapping detected as %q", name)
	}
	if name, ok := Detect(map[string]any{"weather": "sunny"}); ok {
		t.Errorf("foreign mapping detected as %q", name)
	}
}

// TestDetectReportSplit checks the executive_summary key splits on the
// presence of the PR section.
func TestDetectReportSplit(t *testing.T) {
	doc := map[string]any{
		"executive_summary": "summary text",
		"pr_summary":        map[string]any{"files_changed": 3},
	}
	if got, _ := Detect(doc); got != "pr_report" {
		t.Errorf("with pr_summary: detected %q, want pr_report", got)
	}
	delete(doc, "pr_summary")
	if got, _ := Detect(doc); got != "report" {
		t.Errorf("without pr_summary: detected %q, want report", got)
	}
}

// TestDetectImprovementDisambiguation checks the first-element tie-break
// between the three improvement shapes.
func TestDetectImprovementDisambiguation(t *testing.T) {
	cases := []struct {
		want  string
		first map[string]any
	}{
		{"handoff_improvement", map[string]any{"transition": map[string]any{}}},
		{"handoff_improvement", map[string]any{"current_handoff": []any{}}},
		{"orchestration_improvement", map[string]any{"current_structure": map[string]any{}}},
		{"orchestration_improvement", map[string]any{"proposed_structure": map[string]any{}}},
		{"context_improvement", map[string]any{"file": "agents/analyzer.md"}},
	}
	for _, tc := range cases {
		doc := map[string]any{"improvements": []any{tc.first}}
		if got, _ := Detect(doc); got != tc.want {
			t.Errorf("first element %v: detected %q, want %q", tc.first, got, tc.want)
		}
	}

	// Empty and non-mapping first elements fall back to the default type.
	if got, _ := Detect(map[string]any{"improvements": []any{}}); got != "context_improvement" {
		t.Errorf("empty list: detected %q, want context_improvement", got)
	}

	// Only the first element is inspected: a handoff batch with a malformed
	// first entry is classified by that entry alone. This matches the
	// upstream contract.
	doc := map[string]any{"improvements": []any{
		map[string]any{"file": "x.md"},
		map[string]any{"transition": map[string]any{}},
	}}
	if got, _ := Detect(doc); got != "context_improvement" {
		t.Errorf("mixed batch: detected %q, want context_improvement", got)
	}
}
