package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/consta/core/calendar"
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/internal/parquet"
	"github.com/huangsam/consta/schema"
)

// Grid layout, in terminal columns.
const (
	rowLabelWidth = 5 // "Mon  "
	cellWidth     = 2
	gapWidth      = 2 // blank column before each new month
)

// Glyphs per activity level, Level0 first. Each one is cellWidth columns wide.
var (
	emojiGlyphs = [...]string{"⬜", "🟩", "🟨", "🟧", "🟥"}
	plainGlyphs = [...]string{"· ", "░ ", "▒ ", "▓ ", "█ "}
	levelColors = [...]*color.Color{
		color.New(color.FgHiBlack),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgHiRed),
		color.New(color.FgRed),
	}
)

// dayLabels holds the row labels; only Mon, Wed and Fri are shown.
var dayLabels = [calendar.DaysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}

// WriteCalendarResults writes the activity grid to w, dispatching based on the output format configured.
func WriteCalendarResults(w io.Writer, grid *calendar.Grid, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, grid.Output()); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCalendarCSV(w, grid); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeGrid(w, grid, cfg)
	}
	return nil
}

// glyph returns the cell text for an activity level.
func glyph(level calendar.ActivityLevel, cfg *contract.Config) string {
	if level == calendar.LevelUnset {
		return strings.Repeat(" ", cellWidth)
	}
	if cfg.UseEmojis {
		return emojiGlyphs[level]
	}
	return paint(levelColors[level], plainGlyphs[level], cfg.UseColors)
}

// firstVisibleWeek picks the earliest month boundary from which the grid fits
// in maxWidth columns. A maxWidth of 0 means no limit.
func firstVisibleWeek(g *calendar.Grid, maxWidth int) int {
	if maxWidth <= 0 {
		return 0
	}
	for i, start := range g.MonthBoundaries {
		gaps := len(g.MonthBoundaries) - i - 1
		if rowLabelWidth+(g.Weeks-start)*cellWidth+gaps*gapWidth <= maxWidth {
			return start
		}
	}
	return g.MonthBoundaries[len(g.MonthBoundaries)-1]
}

// writeGrid renders the heatmap with month labels, weekday labels, a gap
// column at every month change and a legend.
func writeGrid(w io.Writer, g *calendar.Grid, cfg *contract.Config) error {
	title := withEmoji("📊", "Contribution Activity Grid", cfg.UseEmojis)
	if _, err := fmt.Fprintf(w, "\n%s\n", paint(contract.HeaderColor, title, cfg.UseColors)); err != nil {
		return err
	}

	first := firstVisibleWeek(g, detectWidth(cfg))

	var line strings.Builder
	line.WriteString(strings.Repeat(" ", rowLabelWidth))
	for i, week := range g.MonthBoundaries {
		if week < first {
			continue
		}
		fmt.Fprintf(&line, "%-*s", g.BoundarySpan(i)*cellWidth+gapWidth, g.MonthLabel(i))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
		return err
	}

	for day := range calendar.DaysPerWeek {
		line.Reset()
		fmt.Fprintf(&line, "%3s  ", dayLabels[day])
		for week := first; week < g.Weeks; week++ {
			if week > first && g.IsBoundary(week) {
				line.WriteString(strings.Repeat(" ", gapWidth))
			}
			_, _, level := g.Cell(week, day)
			line.WriteString(glyph(level, cfg))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}

	legend := make([]string, len(calendar.LegendCounts))
	for i, n := range calendar.LegendCounts {
		level := calendar.LevelFor(n)
		if cfg.UseEmojis {
			legend[i] = emojiGlyphs[level]
		} else {
			legend[i] = paint(levelColors[level], strings.TrimSpace(plainGlyphs[level]), cfg.UseColors)
		}
	}
	if _, err := fmt.Fprintf(w, "\n  Less %s More\n", strings.Join(legend, " ")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s contributions in %d\n", formatCount(g.Total()), g.Today.Year())
	return err
}

// writeCalendarCSV writes one row per active day.
func writeCalendarCSV(w io.Writer, g *calendar.Grid) error {
	return writeCSVWithHeader(w, []string{"date", "commits", "level"}, func(cw *csv.Writer) error {
		for _, d := range g.Output().Days {
			if err := cw.Write([]string{d.Date, strconv.Itoa(d.Commits), strconv.Itoa(d.Level)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCalendarParquet writes one row per active day to the output file.
func writeCalendarParquet(g *calendar.Grid, cfg *contract.Config) error {
	if err := parquet.WriteDayRowsParquet(parquet.NewDayRows(g.Output()), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
