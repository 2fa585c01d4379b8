// Package schema defines the catalogue of sub-agent output shapes and
// provides structural validation of parsed agent documents against them.
package schema

import (
	"fmt"
	"regexp"
	"sort"
)

// FieldType is the semantic type of a schema field.
type FieldType int

const (
	// TypeString is a plain string, optionally length- or pattern-constrained.
	TypeString FieldType = iota
	// TypeInt is an integer, optionally bounded.
	TypeInt
	// TypeNumber is any numeric value, optionally bounded.
	TypeNumber
	// TypeBool is a boolean.
	TypeBool
	// TypeEnum is a string drawn from a closed set of legal values.
	TypeEnum
	// TypeConfidence is the confidence union: a float in [0,1] or a
	// string ending in "%". Both representations are legal on purpose.
	TypeConfidence
	// TypeObject is a nested mapping with its own field list.
	TypeObject
	// TypeList is an ordered list with a single element spec.
	TypeList
	// TypeAny accepts any well-formed value. Used for the free-form
	// payload sections that legitimately vary by agent.
	TypeAny
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeEnum:
		return "enum"
	case TypeConfidence:
		return "confidence"
	case TypeObject:
		return "object"
	case TypeList:
		return "list"
	case TypeAny:
		return "any"
	}
	return "unknown"
}

// Field describes one typed, constrained field in a schema tree.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  any

	// Numeric bounds (TypeInt, TypeNumber).
	Min *float64
	Max *float64

	// String length bounds (TypeString).
	MinLen *int
	MaxLen *int

	// Pattern constraint (TypeString).
	Pattern *regexp.Regexp

	// Legal values (TypeEnum).
	Enum []string

	// Nested fields (TypeObject). Strict objects reject unknown keys;
	// permissive objects tolerate them.
	Fields []Field
	Strict bool

	// Element spec and item-count bounds (TypeList).
	Elem     *Field
	MinItems *int
	MaxItems *int

	// Advisory flags. These never produce hard errors; they feed the
	// separate warning pass.
	WarnIfEmpty   bool     // list fields: warn when present but empty
	WarnIfMissing string   // optional fields: warn with this message when absent
	WarnEnum      []string // tolerated value set: values outside it warn
}

// Schema is a named, versioned tree of fields describing one valid shape of
// sub-agent output. The root is always an object.
type Schema struct {
	Name    string
	Version int
	Doc     string
	Root    Field
}

var registry = map[string]*Schema{}

func register(s *Schema) {
	if _, dup := registry[s.Name]; dup {
		panic(fmt.Sprintf("schema %q registered twice", s.Name))
	}
	registry[s.Name] = s
}

// Get returns the schema registered under name. The second return is false
// when no such schema exists; callers must treat that as "cannot validate",
// not as a validation failure.
func Get(name string) (*Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns every registered schema name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckRegistry verifies the structural invariants of every registered
// schema: sibling field names are unique, required fields carry no default,
// and enumerations are non-empty. A violation is a programmer error, so this
// returns a hard error rather than a ValidationError list.
func CheckRegistry() error {
	for _, name := range Names() {
		s := registry[name]
		if s.Root.Type != TypeObject {
			return fmt.Errorf("schema %q: root must be an object", name)
		}
		if err := checkField(&s.Root, name); err != nil {
			return err
		}
	}
	return nil
}

func checkField(f *Field, path string) error {
	if f.Required && f.Default != nil {
		return fmt.Errorf("%s: required field has a default", path)
	}
	if f.Type == TypeEnum && len(f.Enum) == 0 {
		return fmt.Errorf("%s: enum field has no legal values", path)
	}
	if f.Type == TypeObject {
		seen := map[string]bool{}
		for i := range f.Fields {
			child := &f.Fields[i]
			if seen[child.Name] {
				return fmt.Errorf("%s: duplicate sibling field %q", path, child.Name)
			}
			seen[child.Name] = true
			if err := checkField(child, path+"."+child.Name); err != nil {
				return err
			}
		}
	}
	if f.Type == TypeList && f.Elem != nil {
		if err := checkField(f.Elem, path+"[]"); err != nil {
			return err
		}
	}
	return nil
}

// Shared pattern and pointer helpers for registry declarations.

// findingIDPattern is the stable cross-reference key format used between
// findings, grounding assessments, fix plans, and reports (e.g. RF-001).
var findingIDPattern = regexp.MustCompile(`^[A-Z]{2,3}-\d{3}$`)

// percentPattern matches percentage confidence strings such as "85%".
var percentPattern = regexp.MustCompile(`^\d{1,3}%$`)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
