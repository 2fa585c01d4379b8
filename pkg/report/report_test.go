package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/agentgate/agentgate/pkg/schema"
)

func boundsErr(path, bound string) *schema.ValidationError {
	return &schema.ValidationError{
		Path:     path,
		Message:  "out of range",
		Kind:     schema.KindBoundsViolation,
		Severity: "error",
		Bound:    bound,
	}
}

// TestDecisionContinue checks the passing record is the bare two-word line.
func TestDecisionContinue(t *testing.T) {
	got := Decision("attacker", nil, nil)
	if got != "decision: continue\n" {
		t.Fatalf("got %q", got)
	}
}

// TestDecisionBlockShape checks the block record caps at five bullets and
// pairs each with its hint when the kind has one.
func TestDecisionBlockShape(t *testing.T) {
	var errs []*schema.ValidationError
	for i := 0; i < 7; i++ {
		errs = append(errs, &schema.ValidationError{
			Path:     fmt.Sprintf("findings.%d.id", i),
			Message:  "required field missing",
			Kind:     schema.KindMissingRequired,
			Severity: "error",
		})
	}
	got := Decision("attacker", errs, nil)

	if !strings.HasPrefix(got, "decision: block\nreason: |\n") {
		t.Fatalf("bad record header: %q", got)
	}
	if n := strings.Count(got, "\n  - "); n != 5 {
		t.Errorf("expected 5 bullets, got %d:\n%s", n, got)
	}
	if n := strings.Count(got, "Hint:"); n != 5 {
		t.Errorf("expected a hint per bullet, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, "2 more error(s)") {
		t.Errorf("expected truncation note:\n%s", got)
	}
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n")[1:] {
		if !strings.HasPrefix(line, "reason:") && !strings.HasPrefix(line, "  ") {
			t.Errorf("reason lines must be indented two spaces: %q", line)
		}
	}
}

// TestHintSelection checks the kind+bound keyed table: numeric and length
// bounds get different hints, item-count bounds get none.
func TestHintSelection(t *testing.T) {
	got := Decision("x", []*schema.ValidationError{boundsErr("a.b", schema.BoundNumeric)}, nil)
	if !strings.Contains(got, "Hint: value must be numeric") {
		t.Errorf("numeric bound hint missing:\n%s", got)
	}

	got = Decision("x", []*schema.ValidationError{boundsErr("a.b", schema.BoundLength)}, nil)
	if !strings.Contains(got, "Hint: this field requires more content") {
		t.Errorf("length bound hint missing:\n%s", got)
	}

	got = Decision("x", []*schema.ValidationError{boundsErr("a.b", schema.BoundItems)}, nil)
	if strings.Contains(got, "Hint:") {
		t.Errorf("item-count bound should have no hint:\n%s", got)
	}
}

// TestDecisionParseError checks a pre-validation parse failure passes
// through verbatim inside a block record.
func TestDecisionParseError(t *testing.T) {
	got := Decision("attacker", nil, fmt.Errorf("no structured block found"))
	if !strings.HasPrefix(got, "decision: block\nreason: |\n") {
		t.Fatalf("bad record header: %q", got)
	}
	if !strings.Contains(got, "  no structured block found\n") {
		t.Errorf("parse error should pass through:\n%s", got)
	}
}

// TestVerbose checks the counted headers and the all-clear line.
func TestVerbose(t *testing.T) {
	if got := Verbose(nil, nil); got != "all checks passed\n" {
		t.Fatalf("got %q", got)
	}

	errs := []*schema.ValidationError{
		{Path: "a", Message: "bad", Kind: schema.KindTypeMismatch, Severity: "error"},
		{Path: "b", Message: "worse", Kind: schema.KindEnumMismatch, Severity: "error"},
	}
	warns := []*schema.ValidationError{
		{Path: "c", Message: "meh", Kind: "advisory", Severity: "warning"},
	}
	got := Verbose(errs, warns)
	if !strings.Contains(got, "ERRORS (2):") {
		t.Errorf("missing error header:\n%s", got)
	}
	if !strings.Contains(got, "WARNINGS (1):") {
		t.Errorf("missing warning header:\n%s", got)
	}
	if !strings.Contains(got, "- a: bad") || !strings.Contains(got, "- c: meh") {
		t.Errorf("entries missing:\n%s", got)
	}
}

// TestEvalGate checks expression evaluation over the validation outcome.
func TestEvalGate(t *testing.T) {
	env := GateEnv(0, 2, true, "attacker")
	pass, err := EvalGate("errors == 0 && warnings < 3", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pass {
		t.Error("expected gate to pass")
	}

	pass, err = EvalGate(`valid && schema == "report"`, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pass {
		t.Error("expected gate to fail on schema name")
	}

	if _, err := EvalGate("errors +", env); err == nil {
		t.Error("expected compile error for malformed expression")
	}
}
