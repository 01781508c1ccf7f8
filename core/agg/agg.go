// Package agg has aggregation logic for Git contribution data.
package agg

import (
	"context"
	"time"

	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RepoResult is the outcome of collecting one repository. A degraded result
// carries zeroed stats and the retrieval error that caused it.
type RepoResult struct {
	Stats    schema.RepoStats
	Degraded bool
	Err      error
}

// StatsOf extracts the stats of each result, keeping their order.
func StatsOf(results []RepoResult) []schema.RepoStats {
	stats := make([]schema.RepoStats, len(results))
	for i, r := range results {
		stats[i] = r.Stats
	}
	return stats
}

// AggregateRepo retrieves and parses the contribution log of one repository.
// Retrieval failures, including timeouts, degrade to zeroed stats instead of
// failing so that other repositories can still be reported.
func AggregateRepo(ctx context.Context, client contract.GitClient, repoPath string, query schema.LogQuery, timeout time.Duration) RepoResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := client.GetContributionLog(ctx, repoPath, query)
	if err != nil {
		contract.Logger().WithFields(logrus.Fields{
			"repo":     repoPath,
			"duration": time.Since(start),
		}).WithError(err).Debug("log retrieval failed, reporting zeroed stats")
		return RepoResult{Stats: schema.EmptyRepoStats(repoPath), Degraded: true, Err: err}
	}

	stats := ParseContributionLog(repoPath, out)
	contract.Logger().WithFields(logrus.Fields{
		"repo":     repoPath,
		"commits":  stats.CommitsAmount,
		"duration": time.Since(start),
	}).Debug("repository aggregated")
	return RepoResult{Stats: stats}
}

// CollectRepos validates every repository in cfg and then aggregates them
// concurrently with at most cfg.Workers retrievals in flight.
// An invalid repository aborts before any log is retrieved. The returned
// slice follows the order of cfg.RepoPaths.
func CollectRepos(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]RepoResult, error) {
	for _, p := range cfg.RepoPaths {
		if err := contract.CheckRepository(ctx, client, p); err != nil {
			return nil, err
		}
	}

	results := make([]RepoResult, len(cfg.RepoPaths))
	workers := max(cfg.Workers, 1)
	contract.Logger().WithFields(logrus.Fields{
		"repos":   len(cfg.RepoPaths),
		"workers": workers,
	}).Debug("collecting repositories")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range cfg.RepoPaths {
		g.Go(func() error {
			// Each goroutine owns a unique index, so no locking is needed.
			results[i] = AggregateRepo(gctx, client, p, cfg.Query, cfg.Timeout)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
