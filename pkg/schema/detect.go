package schema

// detectRules map a root-level key to the schema that owns it, checked in
// order. Keys shared by several schemas either carry a disambiguation
// function or are absent from the table entirely (the grounding-agent
// "assessments" envelopes and the flat fix-stage outputs keyed by
// "finding_id" have no structural discriminator and must be named
// explicitly).
var detectRules = []struct {
	rootKey string
	schema  string
	refine  func(map[string]any) string
}{
	{rootKey: "attack_results", schema: "attacker"},
	{rootKey: "attack_strategy", schema: "strategy"},
	{rootKey: "context_analysis", schema: "context"},
	{rootKey: "grounding_results", schema: "grounding"},
	{rootKey: "diff_analysis", schema: "diff_analysis"},
	{rootKey: "fix_plan", schema: "fix_planner"},
	{rootKey: "question_batches", schema: "fix_coordinator"},
	{rootKey: "execution_summary", schema: "fix_orchestrator"},
	{rootKey: "plugin_analysis", schema: "plugin_analysis"},
	{rootKey: "plan_analysis", schema: "plan_analysis"},
	{rootKey: "context_flow_map", schema: "context_flow_map"},
	{rootKey: "improvements", refine: detectImprovementType},
	{rootKey: "improvement_report", schema: "improvement_report"},
	{rootKey: "challenge_assessments", schema: "challenge"},
	{rootKey: "executive_summary", refine: detectReportType},
}

// Detect returns the name of the schema that should validate data, inferred
// from root-level keys. The second return is false when no rule matches;
// callers must treat that as "cannot validate", not as a validation failure.
func Detect(data map[string]any) (string, bool) {
	for _, rule := range detectRules {
		if _, ok := data[rule.rootKey]; !ok {
			continue
		}
		if rule.refine != nil {
			return rule.refine(data), true
		}
		return rule.schema, true
	}
	return "", false
}

// detectImprovementType tells the three improvement shapes apart. Only the
// first list element is inspected; a malformed first entry can misclassify
// an otherwise well-formed batch, which matches the upstream contract.
func detectImprovementType(data map[string]any) string {
	improvements, _ := data["improvements"].([]any)
	if len(improvements) == 0 {
		return "context_improvement"
	}
	first, ok := improvements[0].(map[string]any)
	if !ok {
		return "context_improvement"
	}
	if hasAny(first, "transition", "current_handoff") {
		return "handoff_improvement"
	}
	if hasAny(first, "current_structure", "proposed_structure") {
		return "orchestration_improvement"
	}
	return "context_improvement"
}

// detectReportType splits the two report shapes that share the
// executive_summary root key on the presence of the PR section.
func detectReportType(data map[string]any) string {
	if _, ok := data["pr_summary"]; ok {
		return "pr_report"
	}
	return "report"
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
