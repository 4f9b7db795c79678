package filesystem

import (
	"io/fs"
	"time"
)

// EntryDescriptor holds the raw facts about one filesystem node as read by
// a Provider. The scan engine consumes descriptors read-only; it never
// mutates them.
type EntryDescriptor struct {
	// Name is the entry's base name.
	Name string

	// Path is the entry's absolute path.
	Path string

	// Size is the apparent byte length for regular files.
	Size int64

	// Mode carries both the type bits and the permission bits.
	Mode fs.FileMode

	// ModTime is the last modification time.
	ModTime time.Time
}

// IsDir reports whether the descriptor refers to a directory.
func (d EntryDescriptor) IsDir() bool {
	return d.Mode.IsDir()
}

// IsSymlink reports whether the descriptor refers to a symbolic link.
func (d EntryDescriptor) IsSymlink() bool {
	return d.Mode&fs.ModeSymlink != 0
}

// Provider reads entry metadata and directory listings. Symlinks are never
// followed: Stat has lstat semantics, and List describes the links
// themselves, not their targets.
type Provider interface {
	// Stat returns the descriptor for the entry at path.
	Stat(path string) (EntryDescriptor, error)

	// List returns the children of the directory at path, sorted by name
	// so that traversal order is stable across runs.
	List(path string) ([]EntryDescriptor, error)

	// ReadLink returns the fully resolved target of the symlink at path.
	// It fails when the link is broken.
	ReadLink(path string) (string, error)
}
