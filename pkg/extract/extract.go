// Package extract pulls the structured document out of raw agent output
// text and parses it into a mapping.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var fencedBlock = regexp.MustCompile("(?si)```ya?ml\\s*\n(.*?)\n```")

// rawDocumentLimit bounds the raw-document fallback: single-line text this
// long or longer is treated as prose, not as an inline mapping. The fenced
// path is unaffected.
const rawDocumentLimit = 500

// Block returns the YAML document embedded in output. A fenced yaml/yml
// block wins; otherwise the whole text is used when it plausibly is a raw
// document (contains a colon and is either multi-line or short). The second
// return is false when no document is found.
func Block(output string) (string, bool) {
	if m := fencedBlock.FindStringSubmatch(output); m != nil {
		return m[1], true
	}
	if strings.Contains(output, ":") &&
		(strings.Contains(output, "\n") || len(output) < rawDocumentLimit) {
		return output, true
	}
	return "", false
}

// Document extracts and parses the structured block from output. The top
// level must be a mapping; bare lists and scalars are format errors because
// type detection needs root keys.
func Document(output string) (map[string]any, error) {
	block, ok := Block(output)
	if !ok {
		return nil, fmt.Errorf("no structured block found: wrap output in ```yaml ... ```")
	}
	var doc any
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, fmt.Errorf("parse structured block: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level must be a mapping, got %T", doc)
	}
	return m, nil
}
