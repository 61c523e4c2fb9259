package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/yaklabco/htmldiff/internal/configloader"
	"github.com/yaklabco/htmldiff/pkg/fsutil"
)

// Exit codes for htmldiff.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitDiffFailed indicates a comparison could not be completed, or
	// differences were found with --exit-code.
	ExitDiffFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitNoInput indicates an input file or directory does not exist.
	ExitNoInput = 66

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrDifferencesFound is returned with --exit-code when the inputs differ.
	ErrDifferencesFound = errors.New("differences found")

	// ErrConfig marks configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrWrite marks failures to write output.
	ErrWrite = errors.New("failed to write output")
)

// UsageError reports invalid arguments or flags.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitInvalidUsage
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) || errors.Is(err, ErrConfig) {
		return ExitConfigError
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ExitNoInput
	}

	if errors.Is(err, ErrWrite) || errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return ExitIOError
	}

	return ExitDiffFailed
}
