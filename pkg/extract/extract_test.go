package extract

import (
	"strings"
	"testing"
)

// TestFencedBlock checks the fenced-block path wins over the raw fallback.
func TestFencedBlock(t *testing.T) {
	output := "Here is my analysis:\n```yaml\nattack_results:\n  attack_type: reasoning\n```\nDone."
	doc, err := Document(output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc["attack_results"]; !ok {
		t.Errorf("expected attack_results root key, got %v", doc)
	}
}

// TestFenceVariants checks yml and mixed-case fences are accepted.
func TestFenceVariants(t *testing.T) {
	for _, fence := range []string{"yaml", "yml", "YAML", "Yml"} {
		output := "```" + fence + "\nkey: value\n```"
		doc, err := Document(output)
		if err != nil {
			t.Errorf("fence %q: unexpected error: %v", fence, err)
			continue
		}
		if doc["key"] != "value" {
			t.Errorf("fence %q: got %v", fence, doc)
		}
	}
}

// TestRawFallback checks unfenced multi-line documents parse.
func TestRawFallback(t *testing.T) {
	doc, err := Document("finding_id: RF-001\nparsed_intent: fix the check\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["finding_id"] != "RF-001" {
		t.Errorf("got %v", doc)
	}
}

// TestProseRejected checks colon-free prose finds no document.
func TestProseRejected(t *testing.T) {
	if _, err := Document("I could not produce any structured output this time."); err == nil {
		t.Error("expected extraction failure on prose")
	}
}

// TestRawLengthThreshold checks the 500-character filter on single-line
// input: short single-line text with a colon is treated as a document, long
// single-line text is treated as prose.
func TestRawLengthThreshold(t *testing.T) {
	short := "status: ok"
	if _, ok := Block(short); !ok {
		t.Error("short single-line mapping should be extracted")
	}

	long := "note: " + strings.Repeat("x", 600)
	if _, ok := Block(long); ok {
		t.Error("long single-line text should be treated as prose")
	}

	// A newline bypasses the length filter entirely.
	if _, ok := Block(long + "\nmore: y"); !ok {
		t.Error("multi-line text with a colon should be extracted regardless of length")
	}
}

// TestNonMappingRejected checks bare lists and scalars are format errors.
func TestNonMappingRejected(t *testing.T) {
	for _, output := range []string{
		"```yaml\n- a\n- b\n```",
		"```yaml\n42\n```",
	} {
		if _, err := Document(output); err == nil {
			t.Errorf("expected mapping error for %q", output)
		}
	}
}

// TestInvalidYAML checks parse failures surface as errors, not panics.
func TestInvalidYAML(t *testing.T) {
	_, err := Document("```yaml\nkey: [unclosed\n```")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error should mention parsing, got %q", err)
	}
}
