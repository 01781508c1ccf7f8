package cmd

import (
	"github.com/spf13/cobra"
)

// summaryCmd prints per-repository totals.
var summaryCmd = &cobra.Command{
	Use:   "summary [repo-path...]",
	Short: "Show lines added, deleted and commits per repository.",
	Long: `Read the history of each repository and sum the line changes and
commits that match the author and date filters.

One row is printed per repository, in the order given, followed by a
summary row. Repositories whose history cannot be read are shown with
zeroed counts; a path that is not a Git repository stops the run.

Examples:
  # Your activity across two projects this year
  consta summary ~/src/api ~/src/web --author alice --since 2024-01-01

  # Include every commit and the activity grid
  consta summary ~/src/api --author alice --breakdown --grid

  # Read repositories from .consta.yaml and export JSON
  consta summary --output json --output-file stats.json`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runSummary()
	},
}
