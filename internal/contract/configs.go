package contract

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/consta/schema"
)

// Default values for configuration.
const (
	DefaultTimeout = 2 * time.Minute
	DefaultColor   = "yes"
	DefaultEmoji   = "yes"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a run.
// This struct is the "final, validated" config.
type Config struct {
	RepoPaths  []string
	Query      schema.LogQuery
	Breakdown  bool
	Grid       bool
	Output     schema.OutputMode
	OutputFile string
	Workers    int
	Timeout    time.Duration // Bound for a single repository log retrieval
	Width      int           // Terminal width override (0 = auto-detect)
	Verbose    bool

	UseEmojis bool // Enable emojis in headers and the activity grid
	UseColors bool // Enable colored table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStrs []string

	// --- Fields from the config file only ---
	Repos []string `mapstructure:"repos"`

	// --- Fields from rootCmd.PersistentFlags() ---
	Author     string `mapstructure:"author"`
	Since      string `mapstructure:"since"`
	Until      string `mapstructure:"until"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Workers    int    `mapstructure:"workers"`
	Timeout    string `mapstructure:"timeout"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	Emoji      string `mapstructure:"emoji"`
	Verbose    bool   `mapstructure:"verbose"`

	// --- Fields from summaryCmd.Flags() ---
	Breakdown bool `mapstructure:"breakdown"`
	Grid      bool `mapstructure:"grid"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.RepoPaths != nil {
		clone.RepoPaths = make([]string, len(c.RepoPaths))
		copy(clone.RepoPaths, c.RepoPaths)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Repository validity is not checked
// here; that happens right before collection so every entry point shares it.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	if err := processRepoPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessSharedInputs validates everything except repository paths. The MCP
// server uses it because paths arrive with each tool call.
func ProcessSharedInputs(cfg *Config, input *ConfigRawInput) error {
	return validateSimpleInputs(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Query = schema.LogQuery{
		Author: input.Author,
		Since:  input.Since,
		Until:  input.Until,
	}
	cfg.Breakdown = input.Breakdown
	cfg.Grid = input.Grid
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Timeout = DefaultTimeout
	if strings.TrimSpace(input.Timeout) != "" {
		timeout, err := time.ParseDuration(strings.TrimSpace(input.Timeout))
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}

	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", cfg.Width)
	}

	return nil
}

// processOutput validates the output format and its destination.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	output := input.Output
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	return nil
}

// processRepoPaths takes positional paths, falling back to the config file list.
func processRepoPaths(cfg *Config, input *ConfigRawInput) error {
	paths := input.RepoPathStrs
	if len(paths) == 0 {
		paths = input.Repos
	}
	resolved, err := ResolveRepoPaths(paths)
	if err != nil {
		return err
	}
	cfg.RepoPaths = resolved
	return nil
}

// ResolveRepoPaths turns user-provided paths into cleaned absolute paths,
// keeping their order. At least one non-blank path is required.
func ResolveRepoPaths(paths []string) ([]string, error) {
	var resolved []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve repository path %q: %w", p, err)
		}
		resolved = append(resolved, filepath.Clean(abs))
	}
	if len(resolved) == 0 {
		return nil, errors.New("at least one repository path is required")
	}
	return resolved, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
