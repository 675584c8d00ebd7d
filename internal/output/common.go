package output

// Output format names accepted on the command line.
const (
	FormatMac  = "mac"
	FormatText = "text"
	FormatJSON = "json"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "x\ty\twidth\theight"
