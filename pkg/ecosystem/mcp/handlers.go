package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agentgate/agentgate/pkg/extract"
	"github.com/agentgate/agentgate/pkg/report"
	"github.com/agentgate/agentgate/pkg/schema"
	"github.com/agentgate/agentgate/pkg/state"
)

// HandleValidate implements the agentgate/validate MCP tool.
func HandleValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	content, _ := args["content"].(string)
	if content == "" {
		return errorResult("content argument is required"), nil
	}
	strict, _ := args["strict"].(bool)

	doc, err := extract.Document(content)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	name, _ := args["type"].(string)
	if name == "" {
		detected, ok := schema.Detect(doc)
		if !ok {
			return errorResult(fmt.Sprintf("cannot detect schema. Root keys: [%s]", strings.Join(rootKeys(doc), ", "))), nil
		}
		name = detected
	}
	s, ok := schema.Get(name)
	if !ok {
		return errorResult(fmt.Sprintf("unknown schema %q", name)), nil
	}

	errs := schema.Validate(s, doc)
	warns := schema.Lint(s, doc)
	if strict && len(warns) > 0 {
		errs = append(errs, schema.Escalate(warns)...)
		warns = nil
	}
	if len(errs) > 0 {
		return errorResult(report.Verbose(errs, warns)), nil
	}
	out := fmt.Sprintf("✓ valid %s output", name)
	if len(warns) > 0 {
		out += "\n" + report.Verbose(nil, warns)
	}
	return textResult(out), nil
}

// HandleDetect implements the agentgate/detect MCP tool.
func HandleDetect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	content, _ := args["content"].(string)
	if content == "" {
		return errorResult("content argument is required"), nil
	}
	doc, err := extract.Document(content)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	name, ok := schema.Detect(doc)
	if !ok {
		return errorResult(fmt.Sprintf("cannot detect schema. Root keys: [%s]", strings.Join(rootKeys(doc), ", "))), nil
	}
	return textResult(name), nil
}

// HandleSchema implements the agentgate/schema MCP tool.
func HandleSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	exportType, _ := args["type"].(string)

	switch exportType {
	case "":
		var b strings.Builder
		for _, name := range schema.Names() {
			s, _ := schema.Get(name)
			fmt.Fprintf(&b, "%s v%d", name, s.Version)
			if s.Doc != "" {
				fmt.Fprintf(&b, " — %s", s.Doc)
			}
			b.WriteString("\n")
		}
		return textResult(b.String()), nil
	case "state":
		data, err := state.GenerateJSONSchema()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(string(data)), nil
	default:
		return errorResult(fmt.Sprintf("unknown schema type %q — use 'state' or omit to list", exportType)), nil
	}
}

func rootKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
