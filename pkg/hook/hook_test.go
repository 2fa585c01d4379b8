package hook

import (
	"strings"
	"testing"
)

// TestRunIgnoresNonTask checks the hook never blocks unrelated tool
// traffic.
func TestRunIgnoresNonTask(t *testing.T) {
	inputs := []string{
		`{"tool_name":"Bash","tool_input":{"prompt":"ls"},"tool_response":"ok"}`,
		`{"tool_name":"Task","tool_input":{"prompt":"run the deploy helper"},"tool_response":"done"}`,
		`not json at all`,
	}
	for _, in := range inputs {
		got := Run(strings.NewReader(in))
		if got != "decision: continue\n" {
			t.Errorf("input %q: got %q", in, got)
		}
	}
}

// TestRunValidatesKnownAgent checks a Task invocation naming a known
// sub-agent has its response validated.
func TestRunValidatesKnownAgent(t *testing.T) {
	in := `{
		"tool_name": "Task",
		"tool_input": {"prompt": "use the fix-reader agent on RF-001", "description": "read fix intent"},
		"tool_response": "` + "```" + `yaml\nfinding_id: RF-001\nparsed_intent: tighten the check\n` + "```" + `"
	}`
	got := Run(strings.NewReader(in))
	if got != "decision: continue\n" {
		t.Errorf("valid output should continue, got %q", got)
	}

	bad := `{
		"tool_name": "Task",
		"tool_input": {"prompt": "use the fix-reader agent"},
		"tool_response": "` + "```" + `yaml\nfinding_id: nope\n` + "```" + `"
	}`
	got = Run(strings.NewReader(bad))
	if !strings.HasPrefix(got, "decision: block\nreason: |\n") {
		t.Fatalf("invalid output should block, got %q", got)
	}
	if !strings.Contains(got, "finding_id") {
		t.Errorf("reason should name the bad field:\n%s", got)
	}
}

// TestRunObjectResponse checks the object-wrapped response encoding.
func TestRunObjectResponse(t *testing.T) {
	in := `{
		"tool_name": "Task",
		"tool_input": {"description": "fix-reader pass"},
		"tool_response": {"result": "` + "```" + `yaml\nfinding_id: RF-001\nparsed_intent: ok then\n` + "```" + `"}
	}`
	got := Run(strings.NewReader(in))
	if got != "decision: continue\n" {
		t.Errorf("got %q", got)
	}
}

// TestSchemaForAgent checks the longest-name precedence between
// fix-planner-v2 and fix-planner.
func TestSchemaForAgent(t *testing.T) {
	if s, ok := SchemaForAgent(ToolInput{Prompt: "dispatch fix-planner-v2 for RF-003"}); !ok || s != "fix_planner_v2" {
		t.Errorf("got %q, %v", s, ok)
	}
	if s, ok := SchemaForAgent(ToolInput{Prompt: "dispatch fix-planner for RF-003"}); !ok || s != "fix_planner" {
		t.Errorf("got %q, %v", s, ok)
	}
	if _, ok := SchemaForAgent(ToolInput{Prompt: "dispatch the barista agent"}); ok {
		t.Error("unknown agent should not match")
	}
}

// TestParseFailureBlocks checks unparseable agent output blocks with the
// wrap-in-yaml instruction.
func TestParseFailureBlocks(t *testing.T) {
	got := Validate("attacker", "I have nothing structured to report.")
	if !strings.HasPrefix(got, "decision: block\nreason: |\n") {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(got, "```yaml") {
		t.Errorf("reason should tell the agent how to fence output:\n%s", got)
	}
}

// TestGate exercises the bare-text path: empty input, undetectable input,
// and a failing document.
func TestGate(t *testing.T) {
	got := Gate("   \n")
	if !strings.Contains(got, "INVALID: Empty output") {
		t.Errorf("empty input:\n%s", got)
	}

	got = Gate("weather: sunny\n")
	if !strings.Contains(got, "Cannot detect agent type. Root keys: [weather]") {
		t.Errorf("undetectable input:\n%s", got)
	}

	valid := "fix_plan:\n" +
		"  finding_id: RF-001\n" +
		"  summary: tighten the bounds checks\n" +
		"  fix_options:\n" +
		"    - approach: patch the validator\n"
	if got := Gate(valid); got != "decision: continue\n" {
		t.Errorf("valid document:\n%s", got)
	}

	got = Gate("fix_plan:\n  finding_id: RF-001\n")
	if !strings.Contains(got, "INVALID (fix_planner):") {
		t.Errorf("failing document should name the schema:\n%s", got)
	}
	if !strings.Contains(got, "- fix_plan.summary:") {
		t.Errorf("failing document should list dotted paths:\n%s", got)
	}
}
