// Package render turns the walker's record stream into terminal output.
//
// The layout follows the classic scanner format: a 20-column right-aligned
// value column (sizes and kind labels), optional permission and
// modification-time columns, and 4-space indentation per nesting level.
// Colors are applied with lipgloss and only when stdout is a terminal.
//
// The renderer is a pure consumer: it never touches the filesystem and
// writes one line per record as records arrive, so output streams while
// the scan is still running.
package render
