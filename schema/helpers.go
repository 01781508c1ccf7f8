package schema

import "path/filepath"

// ShortHash returns the abbreviated commit hash used for display.
func (c Commit) ShortHash() string {
	runes := []rune(c.Hash)
	if len(runes) <= ShortHashLength {
		return c.Hash
	}
	return string(runes[:ShortHashLength])
}

// Net returns added minus deleted lines, floored at zero.
func (r RepoStats) Net() int {
	if r.Deleted >= r.Added {
		return 0
	}
	return r.Added - r.Deleted
}

// Name returns the last path component of the repository, which is the
// only part of the path shown to users.
func (r RepoStats) Name() string {
	base := filepath.Base(filepath.Clean(r.Path))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return r.Path
	}
	return base
}

// EmptyRepoStats returns the zeroed stats used when a repository log
// could not be retrieved.
func EmptyRepoStats(path string) RepoStats {
	return RepoStats{Path: path, Commits: []Commit{}}
}

// Summarize reduces per-repository stats into a single totals row.
// The reduction is a plain sum, so the order of stats does not matter.
func Summarize(stats []RepoStats) Summary {
	var s Summary
	for _, r := range stats {
		s.Repos++
		s.LoC += r.Net()
		s.Added += r.Added
		s.Deleted += r.Deleted
		s.Commits += r.CommitsAmount
	}
	return s
}

// NewSummaryOutput pairs repository stats with their summary row.
func NewSummaryOutput(stats []RepoStats) SummaryOutput {
	if stats == nil {
		stats = []RepoStats{}
	}
	return SummaryOutput{Repos: stats, Summary: Summarize(stats)}
}
