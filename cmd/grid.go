package cmd

import (
	"github.com/huangsam/consta/core"
	"github.com/spf13/cobra"
)

// gridCmd prints the contribution activity grid.
var gridCmd = &cobra.Command{
	Use:   "grid [repo-path...]",
	Short: "Show a calendar heatmap of commits for the current year.",
	Long: `Count matching commits per day across all repositories and draw them
as a Sunday-aligned grid from the start of the year up to today.

Darker cells mean more commits: 1, 2-4, 5-9 and 10 or more per day.

Examples:
  # Heatmap for one author across projects
  consta grid ~/src/api ~/src/web --author alice

  # Plain glyphs without emojis
  consta grid . --emoji no`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteCalendar, "Cannot draw activity grid")
	},
}
