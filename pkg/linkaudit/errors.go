package linkaudit

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := auditor.Audit(ctx, path)
//	if errors.Is(err, linkaudit.ErrUnreadableInput) {
//	    // the data file could not be read; nothing was scanned
//	}
var (
	// ErrUnreadableInput indicates the data file is missing, unreadable or not valid UTF-8.
	// It is the only failure a scan can produce; data problems are reported as findings.
	ErrUnreadableInput = errors.New("unreadable input")

	// ErrInvalidConfig indicates the provided configuration or rule overrides are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was misused (for example, no path given).
	ErrUsage = errors.New("usage error")
)

// usageErrorPrefixes are the message prefixes cobra and pflag use for
// command-line misuse. They carry no sentinel, so they are matched by text.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUnreadableInput):
		return ExitUnreadableInput
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
