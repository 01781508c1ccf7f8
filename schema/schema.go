// Package schema has models and shared constants for all parts of consta.
package schema

// Commit is a single commit from a repository log with its line changes
// summed across every file it touched.
type Commit struct {
	Hash    string `json:"hash"`
	Date    string `json:"date"` // ISO-8601 author date as printed by git
	Message string `json:"message"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
}

// RepoStats holds the aggregated activity of one repository.
type RepoStats struct {
	Path          string   `json:"path"`
	CommitsAmount int      `json:"commits_amount"`
	Added         int      `json:"added"`
	Deleted       int      `json:"deleted"`
	Commits       []Commit `json:"commits"` // log order, most recent first
}

// Summary is the pointwise sum over a set of RepoStats.
type Summary struct {
	Repos   int `json:"repos"`
	LoC     int `json:"loc"` // sum of per-repository net lines
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
	Commits int `json:"commits"`
}

// LogQuery holds the filters passed verbatim to the log source.
// Blank fields mean no restriction.
type LogQuery struct {
	Author string
	Since  string
	Until  string
}

// SummaryOutput is the document emitted by the JSON writer and the MCP server.
type SummaryOutput struct {
	Repos   []RepoStats `json:"repos"`
	Summary Summary     `json:"summary"`
}

// CalendarMonth marks the week column where a month label starts.
type CalendarMonth struct {
	Week  int    `json:"week"`
	Month string `json:"month"`
}

// CalendarDay is one day with at least one commit inside the grid window.
type CalendarDay struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
	Level   int    `json:"level"`
}

// CalendarOutput is the document emitted for the activity grid.
type CalendarOutput struct {
	Start  string          `json:"start"`
	Today  string          `json:"today"`
	Weeks  int             `json:"weeks"`
	Total  int             `json:"total"`
	Months []CalendarMonth `json:"months"`
	Days   []CalendarDay   `json:"days"`
}
