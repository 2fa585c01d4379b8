// Package hook processes the host's PostToolUse envelope: it maps a Task
// sub-agent invocation to a schema, validates the agent's response, and
// renders the decision record the retry harness consumes.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agentgate/agentgate/pkg/extract"
	"github.com/agentgate/agentgate/pkg/report"
	"github.com/agentgate/agentgate/pkg/schema"
)

// Envelope is the PostToolUse JSON document the host writes to stdin.
type Envelope struct {
	ToolName     string          `json:"tool_name"`
	ToolInput    ToolInput       `json:"tool_input"`
	ToolResponse json.RawMessage `json:"tool_response"`
}

// ToolInput carries the Task invocation text the sub-agent name is found in.
type ToolInput struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// agentSchemas maps known sub-agent names to the schema their output must
// satisfy. Order matters for substring matching, so the list form is kept.
var agentSchemas = []struct {
	agent  string
	schema string
}{
	{"reasoning-attacker", "attacker"},
	{"context-attacker", "attacker"},
	{"hallucination-prober", "attacker"},
	{"scope-analyzer", "attacker"},
	{"attack-strategist", "strategy"},
	{"context-analyzer", "context"},
	{"evidence-checker", "grounding"},
	{"proportion-checker", "grounding"},
	{"alternative-explorer", "grounding"},
	{"calibrator", "grounding"},
	{"insight-synthesizer", "report"},
	{"diff-analyzer", "diff_analysis"},
	{"fix-coordinator", "fix_coordinator"},
	{"fix-orchestrator", "fix_orchestrator"},
	{"fix-phase-coordinator", "fix_phase_coordinator"},
	{"fix-reader", "fix_reader"},
	{"fix-planner-v2", "fix_planner_v2"},
	{"fix-red-teamer", "fix_red_teamer"},
	{"fix-applicator", "fix_applicator"},
	{"fix-committer", "fix_committer"},
	{"fix-validator", "fix_validator"},
	// After fix-planner-v2 so the longer name wins the substring match.
	{"fix-planner", "fix_planner"},
	{"plugin-analyzer", "plugin_analysis"},
	{"plan-analyzer", "plan_analysis"},
	{"context-flow-mapper", "context_flow_map"},
	{"context-optimizer", "context_improvement"},
	{"orchestration-improver", "orchestration_improvement"},
	{"handoff-improver", "handoff_improvement"},
	{"improvement-synthesizer", "improvement_report"},
	{"challenger", "challenge"},
}

// SchemaForAgent returns the schema bound to the sub-agent named in the Task
// prompt or description. False means no known agent was mentioned.
func SchemaForAgent(in ToolInput) (string, bool) {
	for _, m := range agentSchemas {
		if contains(in.Prompt, m.agent) || contains(in.Description, m.agent) {
			return m.schema, true
		}
	}
	return "", false
}

// Run reads one envelope from r and returns the decision record to print.
// Everything that is not a known sub-agent's Task result continues silently;
// the hook must never block unrelated tool traffic.
func Run(r io.Reader) string {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return "decision: continue\n"
	}
	if env.ToolName != "Task" {
		return "decision: continue\n"
	}
	schemaName, ok := SchemaForAgent(env.ToolInput)
	if !ok {
		return "decision: continue\n"
	}
	return Validate(schemaName, responseText(env.ToolResponse))
}

// Validate extracts the structured block from a sub-agent's response text
// and validates it against the named schema, returning a decision record.
func Validate(schemaName, response string) string {
	doc, err := extract.Document(response)
	if err != nil {
		return report.Decision(schemaName, nil, fmt.Errorf(
			"Could not parse %s output: %v.\nPlease wrap output in ```yaml ... ``` with valid syntax.",
			schemaName, err))
	}
	s, ok := schema.Get(schemaName)
	if !ok {
		// Unknown type, skip validation.
		return "decision: continue\n"
	}
	return report.Decision(schemaName, schema.Validate(s, doc), nil)
}

// responseText accepts the two response encodings the host emits: a bare
// string, or an object whose "result" field holds the text.
func responseText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Result
	}
	return string(raw)
}

func contains(haystack, needle string) bool {
	return haystack != "" && strings.Contains(haystack, needle)
}
