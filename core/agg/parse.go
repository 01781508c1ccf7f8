package agg

import (
	"strconv"
	"strings"

	"github.com/huangsam/consta/schema"
)

// parseState is the state of the log record machine.
type parseState int

const (
	noOpenRecord parseState = iota
	recordOpen
)

// logFold carries the state folded over the lines of a log.
type logFold struct {
	state   parseState
	current schema.Commit
	stats   schema.RepoStats
}

// ParseContributionLog turns raw `git log --numstat` text into commit records
// and repository totals. The text is a sequence of records: a header line
// followed by zero or more change lines. It never fails; malformed lines are
// defaulted to zero or empty values.
func ParseContributionLog(repoPath string, out []byte) schema.RepoStats {
	f := logFold{stats: schema.EmptyRepoStats(repoPath)}

	for line := range strings.SplitSeq(string(out), "\n") {
		f = f.step(strings.TrimSpace(line))
	}

	return f.flush().stats
}

// step advances the fold by one trimmed line.
func (f logFold) step(line string) logFold {
	switch {
	case line == "":
		return f
	case strings.HasPrefix(line, schema.LogHeaderPrefix):
		f = f.flush()
		f.stats.CommitsAmount++
		f.current = parseCommitHeader(line)
		f.state = recordOpen
		return f
	case f.state == noOpenRecord:
		// Change lines have nothing to attach to before the first header.
		return f
	}

	add, del, ok := parseChangeLine(line)
	if !ok {
		return f
	}
	f.current.Added += add
	f.current.Deleted += del
	f.stats.Added += add
	f.stats.Deleted += del
	return f
}

// flush emits the open record, if any, and leaves the fold with no open record.
func (f logFold) flush() logFold {
	if f.state == recordOpen {
		f.stats.Commits = append(f.stats.Commits, f.current)
	}
	f.current = schema.Commit{}
	f.state = noOpenRecord
	return f
}

// parseCommitHeader extracts hash, date and subject from a header line.
// The subject may itself contain the delimiter, so the payload is split
// into at most three parts. Missing fields are left empty.
func parseCommitHeader(line string) schema.Commit {
	payload := strings.TrimPrefix(line, schema.LogHeaderPrefix)
	parts := strings.SplitN(payload, schema.LogFieldDelimiter, 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return schema.Commit{
		Hash:    strings.TrimSpace(parts[0]),
		Date:    strings.TrimSpace(parts[1]),
		Message: strings.TrimSpace(parts[2]),
	}
}

// parseChangeLine reads the added and deleted counts of a numstat line.
// The file path, if present, is ignored. Lines with fewer than two tokens
// are not change lines.
func parseChangeLine(line string) (int, int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	return countOrZero(fields[0]), countOrZero(fields[1]), true
}

// parseCount parses a non-negative line count. Binary files are reported
// by git as "-", which fails here like any other non-numeric token.
func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	if n > uint64(maxInt) {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

// countOrZero applies parseCount and substitutes zero on failure.
func countOrZero(s string) int {
	n, err := parseCount(s)
	if err != nil {
		return 0
	}
	return n
}
