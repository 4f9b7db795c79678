// Package filesystem provides the metadata-reader abstraction the scan
// engine depends on.
//
// The Provider interface exposes three operations: Stat (lstat semantics,
// symlinks are never followed), List (children of a directory, sorted by
// name so traversal order is reproducible) and ReadLink (resolved symlink
// target).
//
// Implementations:
//   - OSProvider: production implementation over the OS filesystem
//   - MemoryProvider: in-memory implementation for tests, with support for
//     symlinks, special nodes and permission-denied directories
package filesystem
