package scan

import (
	"github.com/dumblebots/fss/internal/files/filesystem"
)

// Sizer computes recursive directory sizes. The size of a directory is the
// sum of the apparent sizes of every regular file reachable under it, at
// any depth, independent of the caller's display-depth limit.
//
// Symlinks contribute nothing: following them would double-count targets
// and loop forever on cyclic links.
type Sizer struct {
	provider filesystem.Provider
}

// NewSizer creates a sizer over the given provider.
// Panics if provider is nil.
func NewSizer(provider filesystem.Provider) *Sizer {
	if provider == nil {
		panic("provider cannot be nil")
	}
	return &Sizer{provider: provider}
}

// Compute returns the total apparent size under dirPath and whether any
// part of the subtree could not be read. An unreadable subdirectory
// contributes zero bytes and sets partial; the total is a best-effort
// lower bound rather than a failure.
func (s *Sizer) Compute(dirPath string) (int64, bool) {
	children, err := s.provider.List(dirPath)
	if err != nil {
		return 0, true
	}

	var total int64
	partial := false

	for _, child := range children {
		switch {
		case child.IsSymlink():
			// skip
		case child.IsDir():
			sub, subPartial := s.Compute(child.Path)
			total += sub
			partial = partial || subPartial
		case child.Mode.IsRegular():
			total += child.Size
		}
	}

	return total, partial
}
