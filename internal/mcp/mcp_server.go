// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"time"

	"github.com/huangsam/consta/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the consta MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Consta Contribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		now:     time.Now,
	}

	// --- 1. Tool: get_contribution_summary ---
	s.AddTool(mcp.NewTool("get_contribution_summary",
		mcp.WithDescription("Sum lines added, deleted and commits per Git repository, with an overall summary row."),
		mcp.WithString("repo_paths", mcp.Description("Comma-separated paths to local Git repositories."), mcp.Required()),
		mcp.WithString("author", mcp.Description("Only count commits whose author matches this pattern.")),
		mcp.WithString("since", mcp.Description("Only count commits after this date (any format git accepts, e.g. '2024-01-01' or '2 weeks ago').")),
		mcp.WithString("until", mcp.Description("Only count commits before this date.")),
	), h.handleGetContributionSummary)

	// --- 2. Tool: get_contribution_calendar ---
	s.AddTool(mcp.NewTool("get_contribution_calendar",
		mcp.WithDescription("Count commits per day for the current year across Git repositories, laid out as Sunday-aligned weeks."),
		mcp.WithString("repo_paths", mcp.Description("Comma-separated paths to local Git repositories."), mcp.Required()),
		mcp.WithString("author", mcp.Description("Only count commits whose author matches this pattern.")),
		mcp.WithString("since", mcp.Description("Only count commits after this date.")),
		mcp.WithString("until", mcp.Description("Only count commits before this date.")),
	), h.handleGetContributionCalendar)

	return s
}

// StartMCPServer starts the consta MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
