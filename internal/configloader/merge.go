package configloader

import "github.com/yaklabco/htmldiff/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings and ints: override overwrites base if non-zero
//   - Booleans: override overwrites base if non-nil, so false can be set
//   - Slices: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	mergeString(&result.Font, override.Font)
	mergeString(&result.Markers, override.Markers)
	mergeString(&result.Granularity, override.Granularity)
	mergeString(&result.Input, override.Input)
	mergeString(&result.LogLevel, override.LogLevel)
	mergeString(&result.LogFile, override.LogFile)
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Report != "" {
		result.Report = override.Report
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	mergeBool(&result.Accurate, override.Accurate)
	mergeBool(&result.SideBySide, override.SideBySide)
	mergeBool(&result.AutoJunk, override.AutoJunk)
	mergeBool(&result.Stylesheet, override.Stylesheet)
	mergeBool(&result.Backup, override.Backup)

	if override.Encodings != nil {
		result.Encodings = override.Encodings
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

func mergeString(dst *string, override string) {
	if override != "" {
		*dst = override
	}
}

func mergeBool(dst **bool, override *bool) {
	if override != nil {
		*dst = config.Bool(*override)
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
