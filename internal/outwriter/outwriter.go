// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/consta/core/agg"
	"github.com/huangsam/consta/core/calendar"
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the per-repository totals using the configured output format.
// A non-nil grid is rendered after the table, or embedded in JSON output.
func (ow *OutWriter) WriteSummary(results []agg.RepoResult, grid *calendar.Grid, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return writeSummaryParquet(results, cfg)
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSummaryResults(w, results, grid, cfg, duration)
	}, successMessage(cfg.Output))
}

// WriteCalendar prints the activity grid using the configured output format.
func (ow *OutWriter) WriteCalendar(grid *calendar.Grid, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return writeCalendarParquet(grid, cfg)
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteCalendarResults(w, grid, cfg)
	}, successMessage(cfg.Output))
}

// successMessage is the stderr note printed after writing to a file.
func successMessage(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON"
	case schema.CSVOut:
		return "Wrote CSV"
	default:
		return "Wrote table"
	}
}

// detectWidth returns the width to lay out against, or 0 when output is not
// going to a terminal and no override is set.
func detectWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if cfg.OutputFile != "" {
		return 0
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// getMaxTablePathWidth calculates the maximum width for project names in table output
// based on terminal width and table configuration.
func getMaxTablePathWidth(cfg *contract.Config) int {
	termWidth := detectWidth(cfg)
	if termWidth == 0 {
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// LoC + added + deleted + commits with borders and padding
	baseWidth := 50

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// writeRunHeader prints the concise 2-line header of a text report.
func writeRunHeader(w io.Writer, cfg *contract.Config, repos int) error {
	author := cfg.Query.Author
	if author == "" {
		author = "everyone"
	}
	since := cfg.Query.Since
	if since == "" {
		since = "beginning"
	}
	until := cfg.Query.Until
	if until == "" {
		until = "now"
	}
	if _, err := fmt.Fprintf(w, "%s: %d (Author: %s)\n", withEmoji("🔎", "Repos", cfg.UseEmojis), repos, author); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s → %s\n", withEmoji("📅", "Range", cfg.UseEmojis), since, until)
	return err
}
