package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// OSProvider implements Provider for the OS filesystem.
type OSProvider struct{}

// NewOSProvider creates a new OS filesystem provider.
func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// Stat returns the descriptor for the entry at path without following
// symlinks.
func (p *OSProvider) Stat(path string) (EntryDescriptor, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return EntryDescriptor{}, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return EntryDescriptor{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	return EntryDescriptor{
		Name:    filepath.Base(absPath),
		Path:    absPath,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}, nil
}

// List returns the children of the directory at path. os.ReadDir already
// sorts by filename, which gives the stable traversal order the walker
// relies on. Children whose metadata cannot be read are skipped.
func (p *OSProvider) List(path string) ([]EntryDescriptor, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	result := make([]EntryDescriptor, 0, len(entries))
	for _, entry := range entries {
		// DirEntry.Info has lstat semantics for symlinks.
		info, err := entry.Info()
		if err != nil {
			continue
		}
		result = append(result, EntryDescriptor{
			Name:    entry.Name(),
			Path:    filepath.Join(absPath, entry.Name()),
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
		})
	}

	return result, nil
}

// ReadLink returns the canonical target of the symlink at path.
func (p *OSProvider) ReadLink(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
