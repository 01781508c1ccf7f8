// Package parquet provides data structures and functions for exporting
// contribution data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/consta/schema"
	"github.com/parquet-go/parquet-go"
)

// RepoRow is the per-repository row of a summary export.
type RepoRow struct {
	// Project is the last path component of the repository
	Project string `parquet:"project,snappy"`

	// Path is the absolute repository path
	Path string `parquet:"path,snappy"`

	// LoC is added minus deleted lines, floored at zero
	LoC int64 `parquet:"loc,snappy"`

	Added   int64 `parquet:"added,snappy"`
	Deleted int64 `parquet:"deleted,snappy"`
	Commits int64 `parquet:"commits,snappy"`

	// CollectedAt is when the run finished (stored as TIMESTAMP with nanosecond precision)
	CollectedAt time.Time `parquet:"collected_at,snappy"`
}

// CommitRow is one commit of a summary export.
type CommitRow struct {
	Project string `parquet:"project,snappy"`
	Hash    string `parquet:"hash,snappy"`

	// Date is the author date exactly as printed by git
	Date    string `parquet:"date,snappy"`
	Message string `parquet:"message,snappy"`
	Added   int64  `parquet:"added,snappy"`
	Deleted int64  `parquet:"deleted,snappy"`
}

// DayRow is one active day of an activity grid export.
type DayRow struct {
	Date    string `parquet:"date,snappy"`
	Commits int32  `parquet:"commits,snappy"`
	Level   int32  `parquet:"level,snappy"`
}

// NewRepoRows converts repository stats into export rows, keeping their order.
func NewRepoRows(stats []schema.RepoStats, collectedAt time.Time) []RepoRow {
	rows := make([]RepoRow, len(stats))
	for i, r := range stats {
		rows[i] = RepoRow{
			Project:     r.Name(),
			Path:        r.Path,
			LoC:         int64(r.Net()),
			Added:       int64(r.Added),
			Deleted:     int64(r.Deleted),
			Commits:     int64(r.CommitsAmount),
			CollectedAt: collectedAt,
		}
	}
	return rows
}

// NewCommitRows flattens the commits of every repository.
func NewCommitRows(stats []schema.RepoStats) []CommitRow {
	var rows []CommitRow
	for _, r := range stats {
		project := r.Name()
		for _, c := range r.Commits {
			rows = append(rows, CommitRow{
				Project: project,
				Hash:    c.Hash,
				Date:    c.Date,
				Message: c.Message,
				Added:   int64(c.Added),
				Deleted: int64(c.Deleted),
			})
		}
	}
	return rows
}

// NewDayRows converts the active days of a calendar document.
func NewDayRows(cal schema.CalendarOutput) []DayRow {
	rows := make([]DayRow, len(cal.Days))
	for i, d := range cal.Days {
		rows[i] = DayRow{Date: d.Date, Commits: int32(d.Commits), Level: int32(d.Level)}
	}
	return rows
}

// CommitsPath derives the commits file name from the main output path,
// e.g. "out/stats.parquet" becomes "out/stats_commits.parquet".
func CommitsPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	stem := strings.TrimSuffix(outputPath, ext)
	if ext == "" {
		ext = ".parquet"
	}
	return stem + "_commits" + ext
}

// WriteRepoRowsParquet writes repository rows to a Parquet file.
func WriteRepoRowsParquet(data []RepoRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteCommitRowsParquet writes commit rows to a Parquet file.
func WriteCommitRowsParquet(data []CommitRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteDayRowsParquet writes activity grid rows to a Parquet file.
func WriteDayRowsParquet(data []DayRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows creates outputPath and writes data using the schema inferred
// from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if len(data) > 0 {
		if _, err := writer.Write(data); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write data to parquet file: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
