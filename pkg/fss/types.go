package fss

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
)

// EntryKind classifies a filesystem entry into one of the four categories
// the scanner reports. Classification is derived once per entry and is
// immutable thereafter.
type EntryKind int

const (
	// KindDirectory is a directory entry. Directories are always visible
	// and are the only kind the walker descends into.
	KindDirectory EntryKind = iota

	// KindRegularFile is a regular file (binary or text).
	KindRegularFile

	// KindSymlink is a symbolic link. Symlinks are reported as links and
	// never resolved to their target's type or traversed through.
	KindSymlink

	// KindSpecial is any non-regular, non-directory, non-symlink node
	// (sockets, FIFOs, block and character devices).
	KindSpecial
)

// String returns a human-readable name for the entry kind.
func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegularFile:
		return "file"
	case KindSymlink:
		return "symlink"
	case KindSpecial:
		return "special"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SpecialKind refines KindSpecial into the concrete node type, used for
// display labels. SpecialNone is used for entries that are not special.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialSocket
	SpecialBlockDevice
	SpecialCharDevice
	SpecialFifo
	SpecialOther
)

// Label returns the display label used in the type column of the output.
func (s SpecialKind) Label() string {
	switch s {
	case SpecialSocket:
		return "SOCKET"
	case SpecialBlockDevice:
		return "BLOCK DEVICE"
	case SpecialCharDevice:
		return "CHAR DEVICE"
	case SpecialFifo:
		return "FIFO PIPE"
	default:
		return "SPECIAL"
	}
}

// MatchMode selects how entry names are compared against a search pattern.
// At most one mode may be active per scan.
type MatchMode int

const (
	// MatchNone disables name matching; every entry qualifies.
	MatchNone MatchMode = iota

	// MatchExact requires the entry name to equal the pattern exactly
	// (case-sensitive, whole string).
	MatchExact

	// MatchNoExt strips the last extension segment from the entry name
	// before comparing it to the pattern. Only the final '.' separates
	// the extension; a leading '.' (dotfiles) is not a separator.
	MatchNoExt

	// MatchContains requires the pattern to be a contiguous substring of
	// the entry name (case-sensitive).
	MatchContains
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchExact:
		return "exact"
	case MatchNoExt:
		return "exact-noext"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// MatchRule pairs a match mode with its pattern.
type MatchRule struct {
	Mode    MatchMode
	Pattern string
}

// Active reports whether a name-matching mode is configured.
func (r MatchRule) Active() bool {
	return r.Mode != MatchNone
}

// DepthMode selects how the recursion depth limit is interpreted.
type DepthMode int

const (
	// DepthNone disables recursion: the root's direct children are
	// displayed and nothing is descended into.
	DepthNone DepthMode = iota

	// DepthUnlimited recurses until the filesystem tree ends.
	DepthUnlimited

	// DepthBounded recurses until records would exceed Limit levels
	// below the root.
	DepthBounded
)

// DepthLimit bounds how deep the walker descends. The root's direct
// children are at depth 1; no emitted record ever has a depth exceeding a
// bounded limit.
type DepthLimit struct {
	Mode  DepthMode
	Limit int
}

// AllowsChildren reports whether the children of a directory at dirDepth
// may be enumerated. The root is at depth 0.
func (d DepthLimit) AllowsChildren(dirDepth int) bool {
	switch d.Mode {
	case DepthUnlimited:
		return true
	case DepthBounded:
		return dirDepth < d.Limit
	default:
		return dirDepth < 1
	}
}

// ScanOptions is the resolved, validated set of options governing one scan
// invocation. It is built once before the walk begins and treated as
// immutable for the duration of the scan.
type ScanOptions struct {
	// Root is the path the walk starts from.
	Root string

	// Depth bounds how deep the walker descends.
	Depth DepthLimit

	// Visibility flags for non-directory kinds. Directories are always
	// visible regardless of these.
	ShowFiles    bool
	ShowSymlinks bool
	ShowSpecial  bool

	// DirSize requests the recursive apparent size of each displayed
	// directory. Size computation always covers the directory's full
	// subtree, independent of Depth.
	DirSize bool

	// Permissions and ModTime request the permission string and last
	// modification time columns.
	Permissions bool
	ModTime     bool

	// Absolute displays each entry's absolute path without indentation.
	Absolute bool

	// Match filters the display set (never the traversal set) by name.
	Match MatchRule

	// ShowErrors surfaces recoverable per-entry errors on stderr.
	// When false they are suppressed silently.
	ShowErrors bool

	// Verbose enables diagnostic logging.
	Verbose bool
}

// Validate checks that the ScanOptions are internally consistent.
// It returns a multi-error if multiple validation failures occur.
func (o *ScanOptions) Validate() error {
	var errs []error

	if o.Root == "" {
		errs = append(errs, fmt.Errorf("root path is required: %w", ErrInvalidConfig))
	}

	if o.Depth.Mode == DepthBounded && o.Depth.Limit < 0 {
		errs = append(errs, fmt.Errorf("recursion depth cannot be negative: %w", ErrInvalidConfig))
	}

	if o.Match.Mode != MatchNone && o.Match.Pattern == "" {
		errs = append(errs, fmt.Errorf("search mode %s requires a pattern: %w", o.Match.Mode, ErrInvalidConfig))
	}

	if o.Match.Mode == MatchNone && o.Match.Pattern != "" {
		errs = append(errs, fmt.Errorf("search pattern given without a search mode: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Record is one output unit produced per visited entry. Records are
// streamed to the consumer as they are discovered rather than buffered,
// so partial output is visible before the scan completes.
type Record struct {
	// Name is the entry's base name.
	Name string

	// Path is the entry's absolute path.
	Path string

	// Depth is the number of directory traversals from the scan root
	// (the root's direct children are depth 1).
	Depth int

	// Kind is the entry's classification.
	Kind EntryKind

	// Special refines Kind when it is KindSpecial.
	Special SpecialKind

	// Size is the apparent size in bytes. Present for regular files
	// always, and for directories only when directory sizes were
	// requested. Nil otherwise.
	Size *int64

	// SizePartial marks a directory size as a best-effort lower bound
	// because part of the subtree could not be read.
	SizePartial bool

	// Mode carries the entry's permission bits.
	Mode fs.FileMode

	// ModTime is the entry's last modification time.
	ModTime time.Time

	// LinkTarget is the resolved target path for symlinks.
	LinkTarget string

	// TargetIsDir reports whether a symlink's target is a directory.
	TargetIsDir bool

	// Err is a recoverable, entry-scoped condition (a directory that
	// could not be listed, a symlink whose target could not be
	// resolved). It never indicates a failed scan.
	Err error
}

// Tally counts filesystem entries by kind.
type Tally struct {
	Files    uint64
	Symlinks uint64
	Special  uint64
	Dirs     uint64
}

// Total returns the total number of entries counted.
func (t Tally) Total() uint64 {
	return t.Files + t.Symlinks + t.Special + t.Dirs
}

// Add accumulates another tally into this one.
func (t *Tally) Add(other Tally) {
	t.Files += other.Files
	t.Symlinks += other.Symlinks
	t.Special += other.Special
	t.Dirs += other.Dirs
}

// ScanReport summarizes a completed scan. The RunID correlates verbose
// log lines with the invocation that produced them.
type ScanReport struct {
	// RunID uniquely identifies this scan invocation.
	RunID uuid.UUID

	// Root is the path the scan started from.
	Root string

	// TopLevel counts the root's direct children by kind.
	TopLevel Tally

	// Recursive counts every traversed entry by kind.
	Recursive Tally

	// Matched counts entries that passed the name-matching filter.
	// Only populated when a search mode was active.
	Matched Tally

	// Searched reports whether a name-matching mode was active.
	Searched bool

	// Elapsed is the wall-clock duration of the walk.
	Elapsed time.Duration
}

// DirTally reports, for one finished directory, the entries that were
// hidden by the visibility flags. The renderer uses it to print grouped
// placeholder rows in place of the hidden entries.
type DirTally struct {
	// Path is the directory the tally belongs to.
	Path string

	// Depth is the directory's depth relative to the scan root.
	Depth int

	// Hidden counts the entries suppressed by visibility flags.
	Hidden Tally

	// HiddenFileBytes is the aggregate apparent size of the hidden
	// regular files.
	HiddenFileBytes int64
}
