package config

// OutputFormat specifies how a single diff is written.
type OutputFormat string

const (
	// FormatHTML writes the annotated HTML document.
	FormatHTML OutputFormat = "html"

	// FormatUnified writes a plain-text unified diff.
	FormatUnified OutputFormat = "unified"
)

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatUnified:
		return true
	default:
		return false
	}
}

// ReportFormat specifies how batch results are reported.
type ReportFormat string

const (
	// ReportText lists one line per file pair.
	ReportText ReportFormat = "text"

	// ReportTable lists changed pairs in an aligned table.
	ReportTable ReportFormat = "table"

	// ReportJSON writes a machine-readable report.
	ReportJSON ReportFormat = "json"

	// ReportSummary prints only the totals.
	ReportSummary ReportFormat = "summary"
)

// IsValid reports whether f is a known report format.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportText, ReportTable, ReportJSON, ReportSummary:
		return true
	default:
		return false
	}
}
