package hook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentgate/agentgate/pkg/extract"
	"github.com/agentgate/agentgate/pkg/schema"
)

// Gate validates bare agent output text with auto-detection and renders a
// decision record. Unlike Run there is no envelope; the raw text arrives
// directly and the schema is inferred from root keys.
func Gate(output string) string {
	if strings.TrimSpace(output) == "" {
		return blockReason("INVALID: Empty output")
	}
	doc, err := extract.Document(output)
	if err != nil {
		return blockReason(fmt.Sprintf("INVALID: %v", err))
	}
	name, ok := schema.Detect(doc)
	if !ok {
		return blockReason(fmt.Sprintf("Cannot detect agent type. Root keys: [%s]", strings.Join(rootKeys(doc), ", ")))
	}
	s, _ := schema.Get(name)
	errs := schema.Validate(s, doc)
	if len(errs) == 0 {
		return "decision: continue\n"
	}
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, fmt.Sprintf("INVALID (%s):", name))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Path, e.Message))
	}
	return blockReason(strings.Join(lines, "\n"))
}

func blockReason(message string) string {
	var b strings.Builder
	b.WriteString("decision: block\n")
	b.WriteString("reason: |\n")
	for _, line := range strings.Split(message, "\n") {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

func rootKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
