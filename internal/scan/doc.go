// Package scan implements the traversal-and-aggregation engine: entry
// classification, name matching, recursive directory sizing and the
// depth-first walk that streams display records.
//
// The engine is deliberately single-threaded and synchronous. Directory
// listings and metadata reads are issued sequentially, records are emitted
// in a deterministic pre-order, and no state is shared across invocations.
//
// Failure semantics: the only fatal condition is an unreadable scan root.
// Everything else (an unlistable subdirectory, a broken symlink) is
// recorded on the affected record and the walk continues with siblings.
package scan
