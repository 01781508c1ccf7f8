// Package cmd defines the command-line interface for consta.
package cmd

import (
	"github.com/huangsam/consta/internal/contract"
	"github.com/huangsam/consta/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("author", "a", "", "Only count commits whose author matches this pattern")
	rootCmd.PersistentFlags().String("since", "", "Only count commits more recent than this date")
	rootCmd.PersistentFlags().String("until", "", "Only count commits older than this date")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of repositories read concurrently")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Time limit for reading a single repository log")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", contract.DefaultColor, "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", contract.DefaultEmoji, "Enable emojis in headers and the activity grid (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print diagnostic logs to stderr")
	rootCmd.PersistentFlags().Bool("breakdown", false, "List every commit under its repository")
	rootCmd.PersistentFlags().Bool("grid", false, "Append the contribution activity grid to the summary")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
