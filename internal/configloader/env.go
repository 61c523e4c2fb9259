package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/htmldiff/pkg/config"
)

// envVarPrefix is the prefix for all htmldiff environment variables.
const envVarPrefix = "HTMLDIFF_"

// envVar binds one environment variable to a config field.
type envVar struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

func stringVar(dst func(*config.Config) *string) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		*dst(cfg) = value
		return nil
	}
}

func boolVar(dst func(*config.Config) **bool) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*dst(cfg) = config.Bool(b)
		return nil
	}
}

func sliceVar(dst func(*config.Config) *[]string) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		*dst(cfg) = parseSliceValue(value)
		return nil
	}
}

// envVars lists every supported environment variable.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"ACCURATE", "Disable the junk heuristic: true or false",
		boolVar(func(c *config.Config) **bool { return &c.Accurate })},
	{"SIDE_BY_SIDE", "Two-column output: true or false",
		boolVar(func(c *config.Config) **bool { return &c.SideBySide })},
	{"FONT", "Font table for side-by-side padding",
		stringVar(func(c *config.Config) *string { return &c.Font })},
	{"MARKERS", "Change markup: span, bracket or notags",
		stringVar(func(c *config.Config) *string { return &c.Markers })},
	{"GRANULARITY", "Unit of comparison: word or line",
		stringVar(func(c *config.Config) *string { return &c.Granularity })},
	{"FORMAT", "Diff output format: html or unified",
		func(c *config.Config, v string) error { c.Format = config.OutputFormat(v); return nil }},
	{"AUTOJUNK", "Ignore very frequent tokens: true or false",
		boolVar(func(c *config.Config) **bool { return &c.AutoJunk })},
	{"STYLESHEET", "Inject the marker stylesheet: true or false",
		boolVar(func(c *config.Config) **bool { return &c.Stylesheet })},
	{"INPUT", "Input kind: auto, html or markdown",
		stringVar(func(c *config.Config) *string { return &c.Input })},
	{"ENCODINGS", "Comma-separated fallback encodings",
		sliceVar(func(c *config.Config) *[]string { return &c.Encodings })},
	{"BACKUP", "Back up overwritten output: true or false",
		boolVar(func(c *config.Config) **bool { return &c.Backup })},
	{"JOBS", "Number of batch workers (0 = auto)", func(c *config.Config, v string) error {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		c.Jobs = jobs
		return nil
	}},
	{"EXTENSIONS", "Comma-separated extensions compared in batch mode",
		sliceVar(func(c *config.Config) *[]string { return &c.Extensions })},
	{"IGNORE", "Comma-separated list of ignore patterns",
		sliceVar(func(c *config.Config) *[]string { return &c.Ignore })},
	{"REPORT", "Batch report format: text, table, json or summary",
		func(c *config.Config, v string) error { c.Report = config.ReportFormat(v); return nil }},
	{"LOG_LEVEL", "Log level: debug, info, warn or error",
		stringVar(func(c *config.Config) *string { return &c.LogLevel })},
	{"LOG_FILE", "Append log records to this file",
		stringVar(func(c *config.Config) *string { return &c.LogFile })},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with HTMLDIFF_ (e.g., HTMLDIFF_FONT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, v := range envVars {
		name := envVarPrefix + v.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := v.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for _, v := range envVars {
		vars[envVarPrefix+v.suffix] = v.description
	}
	return vars
}

// EnvVarNames returns the supported variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envVars))
	for _, v := range envVars {
		names = append(names, envVarPrefix+v.suffix)
	}
	sort.Strings(names)
	return names
}
