// Package calendar builds the year-to-date contribution heatmap.
package calendar

import (
	"strings"
	"time"

	"github.com/huangsam/consta/schema"
)

// DaysPerWeek is the number of rows in the grid. Row 0 is Sunday.
const DaysPerWeek = 7

// dateLayout is the calendar-date part of a commit date.
const dateLayout = "2006-01-02"

// ActivityLevel is the intensity bucket of a grid cell.
type ActivityLevel int

// Activity levels. LevelUnset marks days after today, which are never shaded.
const (
	LevelUnset ActivityLevel = iota - 1
	Level0
	Level1
	Level2
	Level3
	Level4
)

// LegendCounts are representative commit counts for each level, lowest first.
var LegendCounts = []int{0, 1, 3, 6, 10}

// LevelFor maps a commit count to its activity level.
func LevelFor(count int) ActivityLevel {
	switch {
	case count <= 0:
		return Level0
	case count == 1:
		return Level1
	case count <= 4:
		return Level2
	case count <= 9:
		return Level3
	default:
		return Level4
	}
}

// Grid is a Sunday-aligned week-by-weekday view of commit counts from the
// start of the current year up to and including Today.
type Grid struct {
	StartDate       time.Time
	Today           time.Time
	Weeks           int
	Counts          map[time.Time]int
	MonthBoundaries []int
}

// Build counts commits per calendar date across all repositories and lays
// them out on a grid ending at today. Commits whose date cannot be parsed
// are skipped.
func Build(stats []schema.RepoStats, today time.Time) *Grid {
	today = truncateDay(today)
	counts := make(map[time.Time]int)
	for _, repo := range stats {
		for _, c := range repo.Commits {
			day, ok := ParseCommitDate(c.Date)
			if !ok {
				continue
			}
			counts[day]++
		}
	}

	jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	start := jan1.AddDate(0, 0, -int(jan1.Weekday()))
	days := int(today.Sub(start).Hours() / 24)

	g := &Grid{
		StartDate: start,
		Today:     today,
		Weeks:     days/DaysPerWeek + 1,
		Counts:    counts,
	}
	g.MonthBoundaries = g.monthBoundaries()
	return g
}

// ParseCommitDate extracts the calendar date from a commit date such as
// "2024-03-05T10:00:00+01:00" or "2024-03-05 10:00:00 +0100".
func ParseCommitDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "T "); i >= 0 {
		raw = raw[:i]
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// monthBoundaries returns week 0 plus every week whose first day falls in a
// different month than the previous boundary.
func (g *Grid) monthBoundaries() []int {
	boundaries := []int{0}
	prev := g.StartDate.Month()
	for week := 1; week < g.Weeks; week++ {
		m := g.WeekStart(week).Month()
		if m != prev {
			boundaries = append(boundaries, week)
			prev = m
		}
	}
	return boundaries
}

// WeekStart returns the Sunday that begins the given week column.
func (g *Grid) WeekStart(week int) time.Time {
	return g.StartDate.AddDate(0, 0, week*DaysPerWeek)
}

// Cell returns the date, commit count and level of a grid position.
func (g *Grid) Cell(week, day int) (time.Time, int, ActivityLevel) {
	date := g.StartDate.AddDate(0, 0, week*DaysPerWeek+day)
	if date.After(g.Today) {
		return date, 0, LevelUnset
	}
	count := g.Counts[date]
	return date, count, LevelFor(count)
}

// Total is the number of commits that fall inside the grid window.
func (g *Grid) Total() int {
	total := 0
	for day, n := range g.Counts {
		if day.Before(g.StartDate) || day.After(g.Today) {
			continue
		}
		total += n
	}
	return total
}

// IsBoundary reports whether a month starts at the given week, excluding week 0.
func (g *Grid) IsBoundary(week int) bool {
	if week == 0 {
		return false
	}
	for _, b := range g.MonthBoundaries {
		if b == week {
			return true
		}
	}
	return false
}

// BoundarySpan returns the number of weeks covered by the i-th month boundary.
func (g *Grid) BoundarySpan(i int) int {
	next := g.Weeks
	if i+1 < len(g.MonthBoundaries) {
		next = g.MonthBoundaries[i+1]
	}
	return next - g.MonthBoundaries[i]
}

// MonthLabel is the abbreviated month name of the i-th month boundary.
func (g *Grid) MonthLabel(i int) string {
	return g.WeekStart(g.MonthBoundaries[i]).Month().String()[:3]
}

// truncateDay keeps the local calendar date of t as a UTC midnight.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Output converts the grid into its serializable form. Only days inside the
// window with at least one commit are listed, oldest first.
func (g *Grid) Output() schema.CalendarOutput {
	out := schema.CalendarOutput{
		Start:  g.StartDate.Format(dateLayout),
		Today:  g.Today.Format(dateLayout),
		Weeks:  g.Weeks,
		Total:  g.Total(),
		Months: make([]schema.CalendarMonth, len(g.MonthBoundaries)),
		Days:   []schema.CalendarDay{},
	}
	for i, week := range g.MonthBoundaries {
		out.Months[i] = schema.CalendarMonth{Week: week, Month: g.MonthLabel(i)}
	}
	for week := range g.Weeks {
		for day := range DaysPerWeek {
			date, count, level := g.Cell(week, day)
			if level == LevelUnset || count == 0 {
				continue
			}
			out.Days = append(out.Days, schema.CalendarDay{
				Date:    date.Format(dateLayout),
				Commits: count,
				Level:   int(level),
			})
		}
	}
	return out
}
