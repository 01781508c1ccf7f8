// Package core has the orchestration logic behind each consta command.
package core

import (
	"context"
	"time"

	"github.com/huangsam/consta/core/agg"
	"github.com/huangsam/consta/core/calendar"
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/internal/outwriter"
	"github.com/huangsam/consta/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.GitClient) error

// GetSummaryResults validates and collects every configured repository.
// Results follow the order of cfg.RepoPaths.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]agg.RepoResult, error) {
	return agg.CollectRepos(ctx, cfg, client)
}

// GetCalendarResults collects every configured repository and lays out
// their combined commits on an activity grid ending at today.
func GetCalendarResults(ctx context.Context, cfg *contract.Config, client contract.GitClient, today time.Time) (*calendar.Grid, error) {
	results, err := agg.CollectRepos(ctx, cfg, client)
	if err != nil {
		return nil, err
	}
	return calendar.Build(agg.StatsOf(results), today), nil
}

// ExecuteSummary prints per-repository totals and the summary row.
// It serves as the main entry point for the 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	start := time.Now()
	results, err := GetSummaryResults(ctx, cfg, client)
	if err != nil {
		return err
	}

	var grid *calendar.Grid
	if cfg.Grid {
		switch cfg.Output {
		case schema.TextOut, schema.JSONOut:
			grid = calendar.Build(agg.StatsOf(results), time.Now())
		default:
			contract.Logger().WithField("output", cfg.Output).Warn("activity grid is only rendered for text and json output")
		}
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteSummary(results, grid, cfg, duration)
}

// ExecuteCalendar prints the activity grid for the current year.
// It serves as the main entry point for the 'grid' command.
func ExecuteCalendar(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	grid, err := GetCalendarResults(ctx, cfg, client, time.Now())
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCalendar(grid, cfg)
}
