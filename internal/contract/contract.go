// Package contract provides interfaces and shared utilities for the consta CLI's internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/consta/schema"
)

// GitClient defines the Git operations needed to collect contribution data.
// This allows the aggregation logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command in repoPath and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetContributionLog returns the raw numstat log for repoPath, filtered by query.
	GetContributionLog(ctx context.Context, repoPath string, query schema.LogQuery) ([]byte, error)

	// IsInsideWorkTree reports whether repoPath is inside a working Git repository.
	IsInsideWorkTree(ctx context.Context, repoPath string) (bool, error)
}
