package state

import (
	"encoding/json"
	"fmt"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/agentgate/agentgate/pkg/schema"
)

// ValidateDocument checks a parsed state document against the generated
// JSON Schema. Used when a state file of unknown provenance is loaded.
func ValidateDocument(doc any) []*schema.ValidationError {
	schemaJSON, err := GenerateJSONSchema()
	if err != nil {
		return []*schema.ValidationError{{
			Message:  fmt.Sprintf("generate schema: %v", err),
			Severity: "error",
		}}
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return []*schema.ValidationError{{
			Message:  fmt.Sprintf("unmarshal schema: %v", err),
			Severity: "error",
		}}
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("session-state-v1.json", schemaDoc); err != nil {
		return []*schema.ValidationError{{
			Message:  fmt.Sprintf("add schema resource: %v", err),
			Severity: "error",
		}}
	}
	sch, err := c.Compile("session-state-v1.json")
	if err != nil {
		return []*schema.ValidationError{{
			Message:  fmt.Sprintf("compile schema: %v", err),
			Severity: "error",
		}}
	}

	if err := sch.Validate(doc); err != nil {
		var errs []*schema.ValidationError
		if ve, ok := err.(*sjsonschema.ValidationError); ok {
			for _, cause := range flattenValidationErrors(ve) {
				errs = append(errs, &schema.ValidationError{
					Path:     strings.Join(cause.InstanceLocation, "/"),
					Message:  fmt.Sprintf("%v", cause.ErrorKind),
					Kind:     schema.KindTypeMismatch,
					Severity: "error",
				})
			}
		} else {
			errs = append(errs, &schema.ValidationError{
				Message:  err.Error(),
				Severity: "error",
			})
		}
		return errs
	}
	return nil
}

// flattenValidationErrors recursively collects all leaf validation errors.
func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}
