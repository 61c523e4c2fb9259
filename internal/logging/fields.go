package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOld        = "old"
	FieldNew        = "new"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Input fields.
	FieldKind     = "kind"
	FieldEncoding = "encoding"
	FieldBytes    = "bytes"

	// Diff fields.
	FieldAccurate    = "accurate"
	FieldSideBySide  = "side_by_side"
	FieldFont        = "font"
	FieldMarkers     = "markers"
	FieldGranularity = "granularity"
	FieldTokensOld   = "tokens_old"
	FieldTokensNew   = "tokens_new"
	FieldOpcodes     = "opcodes"
	FieldRatio       = "ratio"
	FieldElapsed     = "elapsed"

	// Batch fields.
	FieldJobs      = "jobs"
	FieldPairs     = "pairs"
	FieldChanged   = "changed"
	FieldUnchanged = "unchanged"
	FieldAdded     = "added"
	FieldRemoved   = "removed"
	FieldFailed    = "failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
