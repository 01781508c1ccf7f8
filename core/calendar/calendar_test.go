package calendar

import (
	"testing"
	"time"

	"github.com/huangsam/consta/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func repoWithDates(dates ...string) schema.RepoStats {
	stats := schema.EmptyRepoStats("/repo")
	for _, d := range dates {
		stats.Commits = append(stats.Commits, schema.Commit{Hash: "abcdef0", Date: d})
	}
	stats.CommitsAmount = len(stats.Commits)
	return stats
}

func TestBuildLayout(t *testing.T) {
	// 2024-01-01 is a Monday, so the grid starts on Sunday 2023-12-31.
	g := Build(nil, day(2024, time.March, 15))

	assert.Equal(t, day(2023, time.December, 31), g.StartDate)
	assert.Equal(t, time.Sunday, g.StartDate.Weekday())
	assert.Equal(t, 11, g.Weeks)
	assert.Equal(t, []int{0, 1, 5, 9}, g.MonthBoundaries)

	labels := make([]string, len(g.MonthBoundaries))
	spans := make([]int, len(g.MonthBoundaries))
	for i := range g.MonthBoundaries {
		labels[i] = g.MonthLabel(i)
		spans[i] = g.BoundarySpan(i)
	}
	assert.Equal(t, []string{"Dec", "Jan", "Feb", "Mar"}, labels)
	assert.Equal(t, []int{1, 4, 4, 2}, spans)
	assert.False(t, g.IsBoundary(0))
	assert.True(t, g.IsBoundary(5))
	assert.False(t, g.IsBoundary(6))
}

func TestBuildStartDateInvariant(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		g := Build(nil, day(year, time.July, 4))
		jan1 := day(year, time.January, 1)

		assert.Equal(t, time.Sunday, g.StartDate.Weekday(), "year %d", year)
		assert.False(t, g.StartDate.After(jan1), "year %d", year)
		assert.LessOrEqual(t, jan1.Sub(g.StartDate), 6*24*time.Hour, "year %d", year)
		assert.Equal(t, 0, g.MonthBoundaries[0])
	}
}

func TestBuildStartsOnJan1WhenSunday(t *testing.T) {
	// 2023-01-01 is a Sunday.
	g := Build(nil, day(2023, time.January, 1))
	assert.Equal(t, day(2023, time.January, 1), g.StartDate)
	assert.Equal(t, 1, g.Weeks)
	assert.Equal(t, []int{0}, g.MonthBoundaries)
	assert.Equal(t, "Jan", g.MonthLabel(0))
}

func TestCellLevels(t *testing.T) {
	today := day(2024, time.March, 15)
	stats := []schema.RepoStats{
		repoWithDates("2024-03-15T09:00:00+01:00"),
		repoWithDates(
			"2024-03-14T10:00:00Z", "2024-03-14T11:00:00Z", "2024-03-14 12:00:00 +0000",
		),
	}
	g := Build(stats, today)

	date, count, level := g.Cell(10, 5)
	assert.Equal(t, today, date)
	assert.Equal(t, 1, count)
	assert.Equal(t, Level1, level)

	_, count, level = g.Cell(10, 4)
	assert.Equal(t, 3, count)
	assert.Equal(t, Level2, level)

	_, count, level = g.Cell(10, 6)
	assert.Zero(t, count)
	assert.Equal(t, LevelUnset, level)

	_, count, level = g.Cell(0, 0)
	assert.Zero(t, count)
	assert.Equal(t, Level0, level)

	assert.Equal(t, 4, g.Total())
}

func TestBuildToleratesLocalToday(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	g := Build([]schema.RepoStats{repoWithDates("2024-03-15")}, time.Date(2024, time.March, 15, 23, 30, 0, 0, loc))

	assert.Equal(t, day(2024, time.March, 15), g.Today)
	_, count, level := g.Cell(10, 5)
	assert.Equal(t, 1, count)
	assert.Equal(t, Level1, level)
}

func TestBuildSkipsUnparseableDates(t *testing.T) {
	g := Build([]schema.RepoStats{
		repoWithDates("", "yesterday", "2024-13-01", "2024-02-10T08:00:00Z"),
	}, day(2024, time.March, 15))

	assert.Len(t, g.Counts, 1)
	assert.Equal(t, 1, g.Counts[day(2024, time.February, 10)])
	assert.Equal(t, 1, g.Total())
}

func TestTotalExcludesOutsideWindow(t *testing.T) {
	g := Build([]schema.RepoStats{
		repoWithDates("2023-12-30", "2023-12-31", "2024-03-15", "2024-03-16", "2025-01-01"),
	}, day(2024, time.March, 15))

	assert.Equal(t, 2, g.Total())
	assert.Len(t, g.Counts, 5)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		count int
		want  ActivityLevel
	}{
		{-1, Level0},
		{0, Level0},
		{1, Level1},
		{2, Level2},
		{4, Level2},
		{5, Level3},
		{9, Level3},
		{10, Level4},
		{250, Level4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.count), "count %d", tt.count)
	}

	require.Len(t, LegendCounts, 5)
	for i, c := range LegendCounts {
		assert.Equal(t, ActivityLevel(i), LevelFor(c))
	}
}

func TestParseCommitDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-05T10:00:00+01:00", day(2024, time.March, 5), true},
		{"2024-03-05 10:00:00 +0100", day(2024, time.March, 5), true},
		{"  2024-03-05  ", day(2024, time.March, 5), true},
		{"2024/03/05", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCommitDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGridOutput(t *testing.T) {
	g := Build([]schema.RepoStats{
		repoWithDates("2024-03-14", "2024-03-14", "2024-01-02", "2024-03-20"),
	}, day(2024, time.March, 15))

	out := g.Output()
	assert.Equal(t, "2023-12-31", out.Start)
	assert.Equal(t, "2024-03-15", out.Today)
	assert.Equal(t, 11, out.Weeks)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, []schema.CalendarMonth{
		{Week: 0, Month: "Dec"},
		{Week: 1, Month: "Jan"},
		{Week: 5, Month: "Feb"},
		{Week: 9, Month: "Mar"},
	}, out.Months)
	assert.Equal(t, []schema.CalendarDay{
		{Date: "2024-01-02", Commits: 1, Level: 1},
		{Date: "2024-03-14", Commits: 2, Level: 2},
	}, out.Days)
}

func TestGridOutputEmpty(t *testing.T) {
	out := Build(nil, day(2024, time.March, 15)).Output()
	assert.NotNil(t, out.Days)
	assert.Empty(t, out.Days)
	assert.Zero(t, out.Total)
}
