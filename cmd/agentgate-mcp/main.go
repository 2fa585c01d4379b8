// Package main provides the agentgate-mcp binary — MCP server for AI agents.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	amcp "github.com/agentgate/agentgate/pkg/ecosystem/mcp"
)

var version = "dev"

func main() {
	s := amcp.NewServer(version)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
