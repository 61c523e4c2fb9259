// Package config defines the configuration types for htmldiff.
// These types are pure data structures; loading and layering live in
// internal/configloader.
package config

// Defaults shared by the loader, the template and the CLI.
const (
	DefaultFont        = "times new roman"
	DefaultMarkers     = "span"
	DefaultGranularity = "word"
	DefaultInput       = "auto"
	DefaultLogLevel    = "info"
)

// DefaultExtensions are the file extensions batch mode compares.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultExtensions = []string{".html", ".htm", ".md", ".markdown"}

// Config is the root configuration structure.
//
// Booleans are pointers so that a layer can explicitly turn an option off;
// nil means "not set in this layer".
type Config struct {
	// Accurate disables the junk heuristic.
	Accurate *bool `json:"accurate,omitempty" yaml:"accurate,omitempty"`

	// SideBySide renders old and new in two columns.
	SideBySide *bool `json:"side_by_side,omitempty" yaml:"side_by_side,omitempty"`

	// Font is the width table used for side-by-side padding.
	Font string `json:"font,omitempty" yaml:"font,omitempty"`

	// Markers selects the change markup: span, bracket or notags.
	Markers string `json:"markers,omitempty" yaml:"markers,omitempty"`

	// Granularity is word or line.
	Granularity string `json:"granularity,omitempty" yaml:"granularity,omitempty"`

	// Format is the diff output format: html or unified.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// AutoJunk ignores very frequent tokens when aligning long documents.
	AutoJunk *bool `json:"autojunk,omitempty" yaml:"autojunk,omitempty"`

	// Stylesheet injects the marker CSS into the output.
	Stylesheet *bool `json:"stylesheet,omitempty" yaml:"stylesheet,omitempty"`

	// Input forces the input kind: auto, html or markdown.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Encodings lists fallback encodings tried after UTF-8.
	Encodings []string `json:"encodings,omitempty" yaml:"encodings,omitempty"`

	// Backup keeps the previous output file as a sidecar before overwriting.
	Backup *bool `json:"backup,omitempty" yaml:"backup,omitempty"`

	// Jobs is the batch worker count; 0 means one per CPU.
	Jobs int `json:"jobs,omitempty" yaml:"jobs,omitempty"`

	// Extensions limits batch mode to files with these extensions.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files batch mode skips.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	// Report is the batch report format: text, table, json or summary.
	Report ReportFormat `json:"report,omitempty" yaml:"report,omitempty"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`

	// LogFile, when set, receives a copy of every log record.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// NewConfig returns a Config with every option at its default.
func NewConfig() *Config {
	return &Config{
		Accurate:    Bool(false),
		SideBySide:  Bool(false),
		Font:        DefaultFont,
		Markers:     DefaultMarkers,
		Granularity: DefaultGranularity,
		Format:      FormatHTML,
		AutoJunk:    Bool(false),
		Stylesheet:  Bool(true),
		Input:       DefaultInput,
		Backup:      Bool(false),
		Jobs:        0,
		Extensions:  append([]string(nil), DefaultExtensions...),
		Report:      ReportText,
		LogLevel:    DefaultLogLevel,
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences p, treating nil as false.
func BoolValue(p *bool) bool {
	return p != nil && *p
}
