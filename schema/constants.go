package schema

// OutputMode represents the format of the output.
type OutputMode string

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ShortHashLength is the number of hash characters shown in breakdowns.
const ShortHashLength = 7

// SummaryLabel names the totals row in tabular output.
const SummaryLabel = "summary"

// Log record format shared by the log source and the parser. Each commit
// starts with a header line of LogHeaderPrefix followed by
// hash, author date and subject joined by LogFieldDelimiter.
const (
	LogHeaderPrefix   = "commit "
	LogFieldDelimiter = "|"
	LogHeaderFormat   = LogHeaderPrefix + "%H" + LogFieldDelimiter + "%aI" + LogFieldDelimiter + "%s"
)
