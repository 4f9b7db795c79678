// Package files groups file-related functionality into sub-packages.
//
// Sub-packages:
//   - filesystem: metadata-reader abstraction over the OS filesystem with an
//     in-memory implementation for tests
//
// # Usage
//
//	import "github.com/dumblebots/fss/internal/files/filesystem"
//
//	provider := filesystem.NewOSProvider()
//	children, err := provider.List("/var/log")
package files
