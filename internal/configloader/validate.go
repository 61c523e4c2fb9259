package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/document"
	"github.com/yaklabco/htmldiff/pkg/fontmetric"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "markers").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Empty fields
// are not checked, so partial configuration layers validate too.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Font != "" && !fontmetric.Supported(cfg.Font) {
		result.fail("font", cfg.Font, "unsupported font %q; must be one of: %s",
			cfg.Font, strings.Join(fontmetric.Fonts(), ", "))
	}

	if cfg.Markers != "" {
		if _, ok := htmldiff.MarkersFor(htmldiff.MarkerStyle(cfg.Markers)); !ok {
			result.fail("markers", cfg.Markers, "invalid markers %q; must be one of: span, bracket, notags", cfg.Markers)
		}
	}

	switch htmldiff.Granularity(cfg.Granularity) {
	case "", htmldiff.GranularityWord, htmldiff.GranularityLine:
	default:
		result.fail("granularity", cfg.Granularity, "invalid granularity %q; must be one of: word, line", cfg.Granularity)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: html, unified", cfg.Format)
	}

	if !document.ValidKind(document.Kind(cfg.Input)) {
		result.fail("input", cfg.Input, "invalid input %q; must be one of: auto, html, markdown", cfg.Input)
	}

	for i, name := range cfg.Encodings {
		if !document.ValidEncoding(name) {
			result.fail(fmt.Sprintf("encodings[%d]", i), name, "unknown encoding %q", name)
		}
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.warn(fmt.Sprintf("extensions[%d]", i), ext, "extension %q does not start with a dot; it will never match", ext)
		}
	}

	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if cfg.Report != "" && !cfg.Report.IsValid() {
		result.fail("report", cfg.Report, "invalid report %q; must be one of: text, table, json, summary", cfg.Report)
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if config.BoolValue(cfg.SideBySide) && htmldiff.Granularity(cfg.Granularity) == htmldiff.GranularityLine {
		result.fail("side_by_side", true, "side-by-side output needs word granularity")
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
