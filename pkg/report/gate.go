package report

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// GateEnv builds the variable set a gate expression sees.
func GateEnv(errors, warnings int, valid bool, schemaName string) map[string]any {
	return map[string]any{
		"errors":   errors,
		"warnings": warnings,
		"valid":    valid,
		"schema":   schemaName,
	}
}

// EvalGate evaluates a boolean gate expression such as
// "errors == 0 && warnings < 3" against the validation outcome. The result
// replaces the default pass/fail decision.
func EvalGate(expression string, env map[string]any) (bool, error) {
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("compile gate expression: %w", err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate gate expression: %w", err)
	}
	pass, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("gate expression returned %T, want bool", out)
	}
	return pass, nil
}
