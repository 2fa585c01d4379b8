package schema

import (
	"strings"
	"testing"
)

func mustGet(t *testing.T, name string) *Schema {
	t.Helper()
	s, ok := Get(name)
	if !ok {
		t.Fatalf("schema %q not registered", name)
	}
	return s
}

func findError(errs []*ValidationError, kind, path string) *ValidationError {
	for _, e := range errs {
		if e.Kind == kind && e.Path == path {
			return e
		}
	}
	return nil
}

// TestValidateCollectsAllErrors checks that a document with several
// independent problems surfaces every one of them in a single pass.
func TestValidateCollectsAllErrors(t *testing.T) {
	s := mustGet(t, "attacker")
	doc := map[string]any{
		"attack_results": map[string]any{
			"findings": []any{
				map[string]any{
					"id":         "bad",
					"severity":   "HIGH",
					"confidence": 2.0,
				},
			},
		},
	}
	errs := Validate(s, doc)
	if len(errs) < 3 {
		t.Fatalf("expected at least 3 errors, got %d: %v", len(errs), errs)
	}

	if e := findError(errs, KindPatternMismatch, "attack_results.findings.0.id"); e == nil {
		t.Errorf("expected pattern-mismatch on id, got: %v", errs)
	}
	if e := findError(errs, KindBoundsViolation, "attack_results.findings.0.confidence"); e == nil {
		t.Errorf("expected bounds-violation on confidence, got: %v", errs)
	}

	missing := false
	for _, path := range []string{"category", "target", "evidence", "attack_applied", "recommendation"} {
		if findError(errs, KindMissingRequired, "attack_results.findings.0."+path) != nil {
			missing = true
		}
	}
	if !missing {
		t.Errorf("expected at least one missing-required on the finding, got: %v", errs)
	}
}

// TestValidateIdempotent checks that repeated validation of the same data
// gives the same result.
func TestValidateIdempotent(t *testing.T) {
	s := mustGet(t, "fix_reader")
	doc := map[string]any{
		"finding_id":    "RF-001",
		"parsed_intent": "tighten the input check",
	}
	first := Validate(s, doc)
	second := Validate(s, doc)
	if len(first) != 0 || len(second) != 0 {
		t.Fatalf("expected clean validation both times, got %v then %v", first, second)
	}
}

// TestFindingIDPattern checks the identifier format boundary cases.
func TestFindingIDPattern(t *testing.T) {
	s := mustGet(t, "fix_reader")
	cases := []struct {
		id    string
		valid bool
	}{
		{"RF-001", true},
		{"ABC-123", true},
		{"rf-001", false},
		{"RF-01", false},
		{"invalid", false},
	}
	for _, tc := range cases {
		doc := map[string]any{
			"finding_id":    tc.id,
			"parsed_intent": "anything",
		}
		errs := Validate(s, doc)
		if tc.valid && len(errs) != 0 {
			t.Errorf("%s: expected valid, got %v", tc.id, errs)
		}
		if !tc.valid {
			e := findError(errs, KindPatternMismatch, "finding_id")
			if e == nil {
				t.Errorf("%s: expected pattern-mismatch, got %v", tc.id, errs)
				continue
			}
			if !strings.Contains(e.Message, findingIDPattern.String()) {
				t.Errorf("%s: message should name the expected pattern, got %q", tc.id, e.Message)
			}
		}
	}
}

// TestConfidenceUnion checks both legal representations and the rejected
// middle ground.
func TestConfidenceUnion(t *testing.T) {
	s := mustGet(t, "attacker")
	finding := func(confidence any) map[string]any {
		return map[string]any{
			"attack_results": map[string]any{
				"attack_type": "reasoning",
				"findings": []any{
					map[string]any{
						"id":         "RF-001",
						"severity":   "HIGH",
						"title":      "overconfident claim",
						"confidence": confidence,
						"category":   "over-confidence",
						"target":     map[string]any{"claim_id": "C1"},
						"evidence":   map[string]any{"type": "quote"},
						"attack_applied": map[string]any{
							"style": "counterexample",
							"probe": "what if the cache is cold",
						},
						"impact":         map[string]any{"likelihood": "medium"},
						"recommendation": "verify against production traces",
					},
				},
				"summary": map[string]any{"total_findings": 1},
			},
		}
	}

	if errs := Validate(s, finding(0.85)); len(errs) != 0 {
		t.Errorf("0.85: expected valid, got %v", errs)
	}
	if errs := Validate(s, finding("85%")); len(errs) != 0 {
		t.Errorf("85%%: expected valid, got %v", errs)
	}

	errs := Validate(s, finding(1.5))
	if findError(errs, KindBoundsViolation, "attack_results.findings.0.confidence") == nil {
		t.Errorf("1.5: expected bounds-violation, got %v", errs)
	}
	errs = Validate(s, finding("85"))
	if findError(errs, KindPatternMismatch, "attack_results.findings.0.confidence") == nil {
		t.Errorf("\"85\": expected pattern-mismatch, got %v", errs)
	}
}

// TestFixOptionsListBounds checks the 1-3 item contract on fix options.
func TestFixOptionsListBounds(t *testing.T) {
	s := mustGet(t, "fix_planner")
	plan := func(n int) map[string]any {
		options := make([]any, 0, n)
		for i := 0; i < n; i++ {
			options = append(options, map[string]any{"approach": "patch the validator"})
		}
		return map[string]any{
			"fix_plan": map[string]any{
				"finding_id":  "RF-001",
				"summary":     "tighten bounds checks",
				"fix_options": options,
			},
		}
	}

	if errs := Validate(s, plan(0)); findError(errs, KindBoundsViolation, "fix_plan.fix_options") == nil {
		t.Errorf("0 options: expected bounds-violation, got %v", errs)
	}
	if errs := Validate(s, plan(4)); findError(errs, KindBoundsViolation, "fix_plan.fix_options") == nil {
		t.Errorf("4 options: expected bounds-violation, got %v", errs)
	}
	for n := 1; n <= 3; n++ {
		if errs := Validate(s, plan(n)); len(errs) != 0 {
			t.Errorf("%d options: expected valid, got %v", n, errs)
		}
	}
}

// TestStrictEnvelopeRejectsUnknownKeys checks the two-tier strictness: the
// envelope rejects typos while TypeAny payloads accept anything.
func TestStrictEnvelopeRejectsUnknownKeys(t *testing.T) {
	s := mustGet(t, "fix_reader")
	doc := map[string]any{
		"finding_id":    "RF-001",
		"parsed_intent": "fix it",
		"parsd_intent":  "typo key",
	}
	errs := Validate(s, doc)
	e := findError(errs, KindTypeMismatch, "parsd_intent")
	if e == nil {
		t.Fatalf("expected unknown-field error, got %v", errs)
	}
	if !strings.Contains(e.Message, "parsd_intent") {
		t.Errorf("message should name the unknown key, got %q", e.Message)
	}

	s2 := mustGet(t, "fix_planner_v2")
	doc2 := map[string]any{
		"finding_id": "RF-001",
		"fix_plan": map[string]any{
			"anything": []any{"goes", map[string]any{"here": true}},
		},
	}
	if errs := Validate(s2, doc2); len(errs) != 0 {
		t.Errorf("free-form fix_plan should accept anything, got %v", errs)
	}
}

// TestEnumMismatch checks enum errors list the legal values.
func TestEnumMismatch(t *testing.T) {
	s := mustGet(t, "fix_phase_coordinator")
	doc := map[string]any{
		"finding_id":  "RF-002",
		"status":      "partial",
		"retry_count": 0,
	}
	errs := Validate(s, doc)
	e := findError(errs, KindEnumMismatch, "status")
	if e == nil {
		t.Fatalf("expected enum-mismatch, got %v", errs)
	}
	if !strings.Contains(e.Message, "success") || !strings.Contains(e.Message, "failed") {
		t.Errorf("enum message should list legal values, got %q", e.Message)
	}
}

// TestStringLengthBound checks string-length violations carry the length
// bound qualifier so the reporter can pick the right hint.
func TestStringLengthBound(t *testing.T) {
	s := mustGet(t, "fix_planner")
	doc := map[string]any{
		"fix_plan": map[string]any{
			"finding_id":  "RF-001",
			"summary":     "short",
			"fix_options": []any{map[string]any{"approach": "x"}},
		},
	}
	errs := Validate(s, doc)
	e := findError(errs, KindBoundsViolation, "fix_plan.summary")
	if e == nil {
		t.Fatalf("expected bounds-violation on summary, got %v", errs)
	}
	if e.Bound != BoundLength {
		t.Errorf("expected length bound qualifier, got %q", e.Bound)
	}
}

// TestLintWarnings checks the advisory pass: empty lists, missing doc
// fields, and tolerated-but-unknown categories warn without erroring.
func TestLintWarnings(t *testing.T) {
	s := mustGet(t, "attacker")
	doc := map[string]any{
		"attack_results": map[string]any{
			"attack_type":      "reasoning",
			"categories_probed": []any{"reasoning-flaws", "made-up-category"},
			"findings":         []any{},
			"summary":          map[string]any{"total_findings": 0},
		},
	}
	if errs := Validate(s, doc); len(errs) != 0 {
		t.Fatalf("expected no hard errors, got %v", errs)
	}
	warns := Lint(s, doc)
	if len(warns) < 2 {
		t.Fatalf("expected empty-list and category warnings, got %v", warns)
	}
	var emptyList, badCategory bool
	for _, w := range warns {
		if w.Severity != "warning" {
			t.Errorf("lint result should be a warning, got %q", w.Severity)
		}
		if w.Path == "attack_results.findings" && strings.Contains(w.Message, "empty") {
			emptyList = true
		}
		if strings.Contains(w.Message, "made-up-category") {
			badCategory = true
		}
	}
	if !emptyList {
		t.Errorf("expected empty findings warning, got %v", warns)
	}
	if !badCategory {
		t.Errorf("expected unrecognized category warning, got %v", warns)
	}
}

// TestEscalate checks strict-mode escalation copies rather than mutates.
func TestEscalate(t *testing.T) {
	warns := []*ValidationError{
		{Path: "a", Message: "m", Kind: "advisory", Severity: "warning"},
	}
	errs := Escalate(warns)
	if len(errs) != 1 || errs[0].Severity != "error" {
		t.Fatalf("expected escalated copy, got %v", errs)
	}
	if warns[0].Severity != "warning" {
		t.Error("escalation must not mutate the input")
	}
}
