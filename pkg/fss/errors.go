package fss

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := walker.Walk(opts, emit)
//	if errors.Is(err, fss.ErrRootAccess) {
//	    // The starting path could not be read at all
//	}
var (
	// ErrInvalidConfig indicates the provided scan configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootAccess indicates the starting path does not exist or is
	// wholly inaccessible. Unlike per-entry errors this is fatal and
	// aborts the scan.
	ErrRootAccess = errors.New("root path inaccessible")

	// ErrNotDirectory indicates the starting path exists but is not a
	// directory.
	ErrNotDirectory = errors.New("root path is not a directory")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootAccess):
		return ExitRootAccessError
	case errors.Is(err, ErrNotDirectory):
		return ExitRootAccessError
	}

	errStr := err.Error()

	// Conflicting search modes surface as cobra's flag-group error.
	if strings.Contains(errStr, "if any flags in the group") {
		return ExitConfigError
	}

	// Cobra reports flag and argument misuse as plain errors; map the
	// known message shapes to the usage exit code.
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts at most") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	// Common OS error patterns for an unreadable starting path that
	// escaped sentinel wrapping.
	if strings.Contains(errStr, "no such file or directory") ||
		strings.Contains(errStr, "permission denied") {
		return ExitRootAccessError
	}

	return ExitGeneralError
}
