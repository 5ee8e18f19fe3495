package linkaudit

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// Findings never change the exit code; a scan that reports problems still exits 0.
const (
	ExitSuccess         = 0  // Scan completed, with or without findings
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing path, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or rule overrides
	ExitUnreadableInput = 11 // Data file missing, unreadable or not UTF-8
)

const (
	// DefaultPrimaryField is the field holding the canonical product link.
	DefaultPrimaryField = "ownUrl"

	// DefaultSecondaryField is the English-language counterpart of DefaultPrimaryField.
	DefaultSecondaryField = "ownUrlEn"

	// DefaultForbiddenHost is the marketplace host that must not appear in either URL field.
	DefaultForbiddenHost = "smartstore.naver.com"

	// DefaultForbiddenLabel is the display name of DefaultForbiddenHost in reports.
	DefaultForbiddenLabel = "Smart Store"

	// DefaultSeparator terminates a field in the data file.
	DefaultSeparator = ","

	// DefaultClosingBrace closes a record in the data file.
	DefaultClosingBrace = "}"

	// ConfigFileName is the optional project config looked up in the working directory.
	ConfigFileName = "linkaudit.yaml"

	// EnvPath names the environment variable holding the data file path.
	EnvPath = "LINKAUDIT_PATH"
)
