package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/htmldiff/pkg/config"
)

func TestFormatsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatHTML.IsValid())
	assert.True(t, config.FormatUnified.IsValid())
	assert.False(t, config.OutputFormat("pdf").IsValid())

	assert.True(t, config.ReportText.IsValid())
	assert.True(t, config.ReportJSON.IsValid())
	assert.True(t, config.ReportTable.IsValid())
	assert.True(t, config.ReportSummary.IsValid())
	assert.False(t, config.ReportFormat("sarif").IsValid())
}
