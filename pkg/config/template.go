package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template. The YAML form is
// commented; the JSON form is the default configuration.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		data, err := json.MarshalIndent(NewConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
	return []byte(DefaultTemplateHeader() + "\n" + yamlTemplateBody), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# htmldiff configuration
# See: https://github.com/yaklabco/htmldiff
`
}

const yamlTemplateBody = `# Compare every token instead of skipping stopwords and whitespace
# when choosing alignment anchors. Slower, more precise.
accurate: false

# Render old and new in two columns.
side_by_side: false

# Font table used to pad side-by-side columns (see: htmldiff fonts).
font: times new roman

# Change markup: span, bracket or notags.
markers: span

# Unit of comparison: word or line.
granularity: word

# Output format for "htmldiff diff": html or unified.
format: html

# Ignore very frequent tokens when aligning long documents.
autojunk: false

# Inject the marker stylesheet after <head>.
stylesheet: true

# Input kind: auto, html or markdown.
input: auto

# Encodings tried, in order, when an input is not valid UTF-8.
# encodings:
#   - windows-1252
#   - shift_jis

# Keep the previous output as <file>.htmldiff.bak before overwriting.
backup: false

# Batch mode: workers (0 = one per CPU), compared extensions, skipped files
# and report format (text, table, json or summary).
jobs: 0
extensions:
  - .html
  - .htm
  - .md
  - .markdown
# ignore:
#   - "drafts/**"
report: text

# Logging: debug, info, warn or error, and an optional log file.
log_level: info
# log_file: htmldiff.log
`
