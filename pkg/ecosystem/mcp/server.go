package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server with agentgate tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"agentgate",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("agentgate/validate",
			mcp.WithDescription("Validate structured sub-agent output against its schema"),
			mcp.WithString("content", mcp.Required(), mcp.Description("Raw agent output text (fenced yaml block or raw document)")),
			mcp.WithString("type", mcp.Description("Schema name; auto-detected from root keys when omitted")),
			mcp.WithBoolean("strict", mcp.Description("Escalate warnings to failures")),
		),
		HandleValidate,
	)

	s.AddTool(
		mcp.NewTool("agentgate/detect",
			mcp.WithDescription("Detect which schema an agent output document matches"),
			mcp.WithString("content", mcp.Required(), mcp.Description("Raw agent output text")),
		),
		HandleDetect,
	)

	s.AddTool(
		mcp.NewTool("agentgate/schema",
			mcp.WithDescription("List the schema catalogue or export a JSON Schema"),
			mcp.WithString("type", mcp.Description("Export type: 'state' for the session state record; omit to list the catalogue")),
		),
		HandleSchema,
	)

	return s
}
