package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/consta/core/agg"
	"github.com/huangsam/consta/core/calendar"
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/internal/parquet"
	"github.com/huangsam/consta/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryJSON is the JSON document for a summary run.
type summaryJSON struct {
	schema.SummaryOutput
	Calendar *schema.CalendarOutput `json:"calendar,omitempty"`
}

// WriteSummaryResults writes the summary to w, dispatching based on the output format configured.
func WriteSummaryResults(w io.Writer, results []agg.RepoResult, grid *calendar.Grid, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSummaryJSON(w, results, grid); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSV(w, results); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeSummaryTable(w, results, grid, cfg, duration)
	}
	return nil
}

// writeSummaryTable generates and writes the human-readable table. Degraded
// repositories show up only as zeroed rows.
func writeSummaryTable(w io.Writer, results []agg.RepoResult, grid *calendar.Grid, cfg *contract.Config, duration time.Duration) error {
	stats := agg.StatsOf(results)
	summary := schema.Summarize(stats)

	if err := writeRunHeader(w, cfg, len(results)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"project", "LoC", "added", "deleted", "commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTablePathWidth(cfg)
	data := make([][]string, 0, len(stats)+1)
	for _, r := range stats {
		data = append(data, []string{
			contract.TruncatePath(r.Name(), nameWidth),
			formatCount(r.Net()),
			formatAdded(r.Added, cfg.UseColors),
			formatDeleted(r.Deleted, cfg.UseColors),
			formatCount(r.CommitsAmount),
		})
	}
	data = append(data, []string{
		paint(contract.HeaderColor, schema.SummaryLabel, cfg.UseColors),
		formatCount(summary.LoC),
		formatAdded(summary.Added, cfg.UseColors),
		formatDeleted(summary.Deleted, cfg.UseColors),
		formatCount(summary.Commits),
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Breakdown {
		if err := writeBreakdown(w, stats, cfg); err != nil {
			return err
		}
	}
	if grid != nil {
		if err := writeGrid(w, grid, cfg); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Collected %d repositories in %v with %d workers\n", len(results), duration, cfg.Workers)
	return err
}

// writeBreakdown lists every commit under its repository name, in log order.
// Repositories without commits are skipped.
func writeBreakdown(w io.Writer, stats []schema.RepoStats, cfg *contract.Config) error {
	for _, r := range stats {
		if len(r.Commits) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", paint(contract.HeaderColor, r.Name(), cfg.UseColors)); err != nil {
			return err
		}
		for _, c := range r.Commits {
			if _, err := fmt.Fprintf(w, "- %s %s (+%s / -%s)\n",
				paint(contract.HashColor, c.ShortHash(), cfg.UseColors),
				c.Message,
				paint(contract.AddedColor, formatCount(c.Added), cfg.UseColors),
				paint(contract.DeletedColor, formatCount(c.Deleted), cfg.UseColors),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSummaryCSV writes one row per repository followed by the summary row.
func writeSummaryCSV(w io.Writer, results []agg.RepoResult) error {
	header := []string{"project", "path", "loc", "added", "deleted", "commits"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range agg.StatsOf(results) {
			rec := []string{
				s.Name(),
				s.Path,
				strconv.Itoa(s.Net()),
				strconv.Itoa(s.Added),
				strconv.Itoa(s.Deleted),
				strconv.Itoa(s.CommitsAmount),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		sum := schema.Summarize(agg.StatsOf(results))
		return cw.Write([]string{
			schema.SummaryLabel,
			"",
			strconv.Itoa(sum.LoC),
			strconv.Itoa(sum.Added),
			strconv.Itoa(sum.Deleted),
			strconv.Itoa(sum.Commits),
		})
	})
}

// writeSummaryJSON writes the repos and summary document, plus the calendar when present.
func writeSummaryJSON(w io.Writer, results []agg.RepoResult, grid *calendar.Grid) error {
	doc := summaryJSON{
		SummaryOutput: schema.NewSummaryOutput(agg.StatsOf(results)),
	}
	if grid != nil {
		out := grid.Output()
		doc.Calendar = &out
	}
	return writeJSON(w, doc)
}

// writeSummaryParquet writes repository rows to the output file and commit rows
// to a sibling "<stem>_commits" file.
func writeSummaryParquet(results []agg.RepoResult, cfg *contract.Config) error {
	stats := agg.StatsOf(results)
	if err := parquet.WriteRepoRowsParquet(parquet.NewRepoRows(stats, time.Now().UTC()), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	commitsPath := parquet.CommitsPath(cfg.OutputFile)
	if err := parquet.WriteCommitRowsParquet(parquet.NewCommitRows(stats), commitsPath); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", cfg.OutputFile, commitsPath)
	return nil
}
