// Package report renders validation results as the machine decision record
// consumed by the retry harness and as a verbose human-readable listing.
package report

import (
	"fmt"
	"strings"

	"github.com/agentgate/agentgate/pkg/schema"
)

// maxReasonErrors caps the bullets in a block record. The harness feeds the
// reason back to the agent, so the list stays short on purpose.
const maxReasonErrors = 5

// hints maps an error kind (plus bound qualifier for bounds violations) to
// the remediation line appended under the bullet. Kinds without an entry get
// no hint line.
var hints = map[string]string{
	schema.KindMissingRequired:                      "add the missing field to your output",
	schema.KindEnumMismatch:                         "check the list of valid values for this field",
	schema.KindBoundsViolation + schema.BoundNumeric: "value must be numeric and within the valid range",
	schema.KindBoundsViolation + schema.BoundLength:  "this field requires more content",
}

func hintFor(e *schema.ValidationError) (string, bool) {
	h, ok := hints[e.Kind+e.Bound]
	return h, ok
}

// Decision renders the two-line continue/block protocol. A nil error list
// with no parse error is a continue; anything else blocks with a reason
// listing up to five errors. A parse error passes through verbatim.
func Decision(schemaName string, errs []*schema.ValidationError, parseErr error) string {
	if parseErr == nil && len(errs) == 0 {
		return "decision: continue\n"
	}

	var b strings.Builder
	b.WriteString("decision: block\n")
	b.WriteString("reason: |\n")
	if parseErr != nil {
		for _, line := range strings.Split(parseErr.Error(), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		return b.String()
	}

	if schemaName != "" {
		fmt.Fprintf(&b, "  Validation failed for %s output:\n", schemaName)
	} else {
		b.WriteString("  Validation failed:\n")
	}
	shown := errs
	if len(shown) > maxReasonErrors {
		shown = shown[:maxReasonErrors]
	}
	for _, e := range shown {
		fmt.Fprintf(&b, "  - %s: %s\n", e.Path, e.Message)
		if h, ok := hintFor(e); ok {
			fmt.Fprintf(&b, "    Hint: %s\n", h)
		}
	}
	if rest := len(errs) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more error(s)\n", rest)
	}
	return b.String()
}

// Verbose renders every error and warning under counted headers, or an
// all-clear line when both lists are empty.
func Verbose(errs, warns []*schema.ValidationError) string {
	if len(errs) == 0 && len(warns) == 0 {
		return "all checks passed\n"
	}
	var b strings.Builder
	if len(errs) > 0 {
		fmt.Fprintf(&b, "ERRORS (%d):\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(&b, "  - %s: %s\n", e.Path, e.Message)
		}
	}
	if len(warns) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "WARNINGS (%d):\n", len(warns))
		for _, w := range warns {
			fmt.Fprintf(&b, "  - %s: %s\n", w.Path, w.Message)
		}
	}
	return b.String()
}
