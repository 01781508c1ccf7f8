package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/consta/core"
	"github.com/huangsam/consta/core/agg"
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	now     func() time.Time
}

// requestConfig derives the run configuration of a single tool call.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	paths, err := contract.ResolveRepoPaths(contract.SplitList(request.GetString("repo_paths", "")))
	if err != nil {
		return nil, err
	}
	cfg.RepoPaths = paths
	cfg.Query = schema.LogQuery{
		Author: request.GetString("author", cfg.Query.Author),
		Since:  request.GetString("since", cfg.Query.Since),
		Until:  request.GetString("until", cfg.Query.Until),
	}
	return cfg, nil
}

func (h *toolHandler) handleGetContributionSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	results, err := core.GetSummaryResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(schema.NewSummaryOutput(agg.StatsOf(results)), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetContributionCalendar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	grid, err := core.GetCalendarResults(ctx, cfg, h.client, h.now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(grid.Output(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
