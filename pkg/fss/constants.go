package fss

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed (recoverable entry errors included)
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration (conflicting search modes, bad depth)
	ExitRootAccessError = 11 // Starting path missing or inaccessible
)

const (
	// DefaultRoot is the path scanned when none is given on the command line.
	DefaultRoot = "."

	// IndentColWidth is the number of spaces by which each nested level's
	// entries are further indented.
	IndentColWidth = 4

	// ValueColWidth is the width of the right-aligned leading column that
	// holds sizes and kind labels.
	ValueColWidth = 20

	// ModTimeColWidth is the width of the formatted modification time column.
	ModTimeColWidth = 20

	// ModTimeLayout is the display layout for last modification times.
	ModTimeLayout = "Jan 02 2006  15:04"
)
