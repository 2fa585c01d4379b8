package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Error kinds. Every hard error carries exactly one of these.
const (
	KindMissingRequired = "missing-required"
	KindTypeMismatch    = "type-mismatch"
	KindEnumMismatch    = "enum-mismatch"
	KindBoundsViolation = "bounds-violation"
	KindPatternMismatch = "pattern-mismatch"
)

// Bound qualifiers for bounds-violation errors. Remediation hints differ
// between a numeric range and a too-short string, so the reporter needs to
// know which bound was violated.
const (
	BoundNumeric = "numeric"
	BoundLength  = "length"
	BoundItems   = "items"
)

// ValidationError represents a single validation finding with location context.
type ValidationError struct {
	Path     string `json:"path"` // dotted location (e.g., "findings.0.severity")
	Message  string `json:"message"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`        // error, warning
	Bound    string `json:"bound,omitempty"` // set on bounds-violation only
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Path, e.Message)
}

// Validate applies a schema to an already-parsed mapping and returns every
// violation found across the whole tree. It never stops at the first error
// and has no side effects, so repeated calls on the same data give the same
// result.
func Validate(s *Schema, data map[string]any) []*ValidationError {
	v := &validator{}
	v.walkObject(&s.Root, data, "")
	return v.errs
}

// Lint runs the advisory pass: empty-but-permitted lists, missing optional
// documentation fields, unrecognized-but-tolerated category values. The
// results carry severity "warning" and never overlap with Validate's errors.
func Lint(s *Schema, data map[string]any) []*ValidationError {
	l := &linter{}
	l.walkObject(&s.Root, data, "")
	return l.warns
}

type validator struct {
	errs []*ValidationError
}

func (v *validator) add(path, message, kind string) *ValidationError {
	e := &ValidationError{Path: path, Message: message, Kind: kind, Severity: "error"}
	v.errs = append(v.errs, e)
	return e
}

func (v *validator) walkField(f *Field, value any, path string) {
	switch f.Type {
	case TypeAny:
		// Deliberate escape hatch: any well-formed value passes.
	case TypeString:
		v.checkString(f, value, path)
	case TypeInt:
		v.checkInt(f, value, path)
	case TypeNumber:
		v.checkNumber(f, value, path)
	case TypeBool:
		if _, ok := value.(bool); !ok {
			v.add(path, fmt.Sprintf("expected boolean, got %s", typeName(value)), KindTypeMismatch)
		}
	case TypeEnum:
		v.checkEnum(f, value, path)
	case TypeConfidence:
		v.checkConfidence(value, path)
	case TypeObject:
		m, ok := value.(map[string]any)
		if !ok {
			v.add(path, fmt.Sprintf("expected mapping, got %s", typeName(value)), KindTypeMismatch)
			return
		}
		v.walkObject(f, m, path)
	case TypeList:
		v.checkList(f, value, path)
	}
}

func (v *validator) walkObject(f *Field, m map[string]any, path string) {
	for i := range f.Fields {
		child := &f.Fields[i]
		childPath := joinPath(path, child.Name)
		value, present := m[child.Name]
		if !present || value == nil {
			if child.Required {
				v.add(childPath, fmt.Sprintf("required field %q is missing", child.Name), KindMissingRequired)
			}
			continue
		}
		v.walkField(child, value, childPath)
	}
	if f.Strict {
		for _, key := range sortedKeys(m) {
			if !hasField(f, key) {
				v.add(joinPath(path, key), fmt.Sprintf("unknown field %q", key), KindTypeMismatch)
			}
		}
	}
}

func (v *validator) checkString(f *Field, value any, path string) {
	s, ok := value.(string)
	if !ok {
		v.add(path, fmt.Sprintf("expected string, got %s", typeName(value)), KindTypeMismatch)
		return
	}
	if f.MinLen != nil && len(s) < *f.MinLen {
		e := v.add(path, fmt.Sprintf("string length %d below minimum %d", len(s), *f.MinLen), KindBoundsViolation)
		e.Bound = BoundLength
	}
	if f.MaxLen != nil && len(s) > *f.MaxLen {
		e := v.add(path, fmt.Sprintf("string length %d above maximum %d", len(s), *f.MaxLen), KindBoundsViolation)
		e.Bound = BoundLength
	}
	if f.Pattern != nil && !f.Pattern.MatchString(s) {
		v.add(path, fmt.Sprintf("value %q does not match pattern %s", s, f.Pattern), KindPatternMismatch)
	}
}

func (v *validator) checkInt(f *Field, value any, path string) {
	n, ok := intValue(value)
	if !ok {
		v.add(path, fmt.Sprintf("expected integer, got %s", typeName(value)), KindTypeMismatch)
		return
	}
	v.checkNumericBounds(f, float64(n), path)
}

func (v *validator) checkNumber(f *Field, value any, path string) {
	n, ok := numberValue(value)
	if !ok {
		v.add(path, fmt.Sprintf("expected number, got %s", typeName(value)), KindTypeMismatch)
		return
	}
	v.checkNumericBounds(f, n, path)
}

func (v *validator) checkNumericBounds(f *Field, n float64, path string) {
	if f.Min != nil && n < *f.Min {
		e := v.add(path, fmt.Sprintf("value %v below minimum %v", trimFloat(n), trimFloat(*f.Min)), KindBoundsViolation)
		e.Bound = BoundNumeric
	}
	if f.Max != nil && n > *f.Max {
		e := v.add(path, fmt.Sprintf("value %v above maximum %v", trimFloat(n), trimFloat(*f.Max)), KindBoundsViolation)
		e.Bound = BoundNumeric
	}
}

func (v *validator) checkEnum(f *Field, value any, path string) {
	s, ok := value.(string)
	if !ok {
		v.add(path, fmt.Sprintf("expected string, got %s", typeName(value)), KindTypeMismatch)
		return
	}
	if !slices.Contains(f.Enum, s) {
		v.add(path, fmt.Sprintf("value %q not in [%s]", s, strings.Join(f.Enum, ", ")), KindEnumMismatch)
	}
}

// checkConfidence validates the confidence union: a number in [0,1] or a
// percentage string like "85%". Both representations are legal on purpose;
// neither is normalized into the other.
func (v *validator) checkConfidence(value any, path string) {
	if n, ok := numberValue(value); ok {
		if n < 0 || n > 1 {
			e := v.add(path, fmt.Sprintf("confidence %v outside [0, 1]", trimFloat(n)), KindBoundsViolation)
			e.Bound = BoundNumeric
		}
		return
	}
	if s, ok := value.(string); ok {
		if !percentPattern.MatchString(s) {
			v.add(path, fmt.Sprintf("confidence %q is neither a number in [0, 1] nor a percentage like \"85%%\"", s), KindPatternMismatch)
		}
		return
	}
	v.add(path, fmt.Sprintf("expected number or percentage string, got %s", typeName(value)), KindTypeMismatch)
}

func (v *validator) checkList(f *Field, value any, path string) {
	items, ok := value.([]any)
	if !ok {
		v.add(path, fmt.Sprintf("expected list, got %s", typeName(value)), KindTypeMismatch)
		return
	}
	if f.MinItems != nil && len(items) < *f.MinItems {
		e := v.add(path, fmt.Sprintf("list has %d items, minimum is %d", len(items), *f.MinItems), KindBoundsViolation)
		e.Bound = BoundItems
	}
	if f.MaxItems != nil && len(items) > *f.MaxItems {
		e := v.add(path, fmt.Sprintf("list has %d items, maximum is %d", len(items), *f.MaxItems), KindBoundsViolation)
		e.Bound = BoundItems
	}
	if f.Elem == nil {
		return
	}
	for i, item := range items {
		itemPath := path + "." + strconv.Itoa(i)
		if item == nil {
			if f.Elem.Type != TypeAny {
				v.add(itemPath, "list item is null", KindTypeMismatch)
			}
			continue
		}
		v.walkField(f.Elem, item, itemPath)
	}
}

type linter struct {
	warns []*ValidationError
}

func (l *linter) warn(path, message string) {
	l.warns = append(l.warns, &ValidationError{
		Path:     path,
		Message:  message,
		Kind:     "advisory",
		Severity: "warning",
	})
}

func (l *linter) walkField(f *Field, value any, path string) {
	switch f.Type {
	case TypeObject:
		if m, ok := value.(map[string]any); ok {
			l.walkObject(f, m, path)
		}
	case TypeList:
		items, ok := value.([]any)
		if !ok {
			return
		}
		if f.WarnIfEmpty && len(items) == 0 {
			l.warn(path, "list is empty")
		}
		for i, item := range items {
			itemPath := path + "." + strconv.Itoa(i)
			// A tolerated set on the list itself applies per element.
			if len(f.WarnEnum) > 0 {
				l.checkTolerated(f, item, itemPath)
			}
			if f.Elem != nil {
				l.walkField(f.Elem, item, itemPath)
			}
		}
	default:
		l.checkTolerated(f, value, path)
	}
}

func (l *linter) walkObject(f *Field, m map[string]any, path string) {
	for i := range f.Fields {
		child := &f.Fields[i]
		childPath := joinPath(path, child.Name)
		value, present := m[child.Name]
		if !present || value == nil {
			if child.WarnIfMissing != "" {
				l.warn(childPath, child.WarnIfMissing)
			}
			continue
		}
		l.walkField(child, value, childPath)
	}
}

// checkTolerated flags string values outside a field's tolerated set. These
// sets are advisory vocabularies, not closed enums, so an unknown value
// warns instead of failing.
func (l *linter) checkTolerated(f *Field, value any, path string) {
	if len(f.WarnEnum) == 0 {
		return
	}
	s, ok := value.(string)
	if !ok {
		return
	}
	if !slices.Contains(f.WarnEnum, s) {
		l.warn(path, fmt.Sprintf("unrecognized value %q (known: %s)", s, strings.Join(f.WarnEnum, ", ")))
	}
}

// Escalate copies warnings into error severity for strict mode. The inputs
// are not mutated.
func Escalate(warns []*ValidationError) []*ValidationError {
	out := make([]*ValidationError, 0, len(warns))
	for _, w := range warns {
		e := *w
		e.Severity = "error"
		out = append(out, &e)
	}
	return out
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func hasField(f *Field, name string) bool {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return true
		}
	}
	return false
}

// sortedKeys keeps unknown-field error ordering deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// intValue accepts the integer representations the YAML and JSON decoders
// produce. Floats with a fractional part are not integers.
func intValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

func numberValue(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func trimFloat(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "number"
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", value)
}
