package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

type memEntry struct {
	desc   EntryDescriptor
	target string // symlink target (as given, may be relative)
	denied bool   // directory listing fails with a permission error
}

// MemoryProvider implements Provider for in-memory testing. Trees are
// described with forward-slash paths relative to the configured root.
// Directories can be marked as denied to exercise the recoverable-error
// paths of the walker and sizer.
type MemoryProvider struct {
	entries map[string]*memEntry
	root    string
}

// NewMemoryProvider creates an in-memory filesystem rooted at root.
func NewMemoryProvider(root string) *MemoryProvider {
	root = path.Clean(root)

	m := &MemoryProvider{
		entries: make(map[string]*memEntry),
		root:    root,
	}
	m.entries[root] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(root),
			Path:    root,
			Mode:    0o755 | fs.ModeDir,
			ModTime: time.Now(),
		},
	}
	return m
}

// Root returns the provider's root path.
func (m *MemoryProvider) Root() string {
	return m.root
}

func (m *MemoryProvider) abs(p string) string {
	p = path.Clean(p)
	if strings.HasPrefix(p, "/") {
		return p
	}
	return path.Join(m.root, p)
}

// AddDir adds an empty directory, creating parents as needed.
func (m *MemoryProvider) AddDir(dirPath string) {
	absPath := m.abs(dirPath)
	m.entries[absPath] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(absPath),
			Path:    absPath,
			Mode:    0o755 | fs.ModeDir,
			ModTime: time.Now(),
		},
	}
	m.ensureParents(absPath)
}

// AddFile adds a regular file of the given apparent size.
func (m *MemoryProvider) AddFile(filePath string, size int64) {
	m.AddFileWithTime(filePath, size, time.Now())
}

// AddFileWithTime adds a regular file with a specific modification time.
func (m *MemoryProvider) AddFileWithTime(filePath string, size int64, modTime time.Time) {
	absPath := m.abs(filePath)
	m.entries[absPath] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(absPath),
			Path:    absPath,
			Size:    size,
			Mode:    0o644,
			ModTime: modTime,
		},
	}
	m.ensureParents(absPath)
}

// AddSymlink adds a symbolic link pointing at target. The target does not
// have to exist; ReadLink on a broken link fails the way the OS does.
func (m *MemoryProvider) AddSymlink(linkPath, target string) {
	absPath := m.abs(linkPath)
	m.entries[absPath] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(absPath),
			Path:    absPath,
			Mode:    0o777 | fs.ModeSymlink,
			ModTime: time.Now(),
		},
		target: target,
	}
	m.ensureParents(absPath)
}

// AddSpecial adds a special node. typeBits must be one of fs.ModeSocket,
// fs.ModeNamedPipe, fs.ModeDevice or fs.ModeDevice|fs.ModeCharDevice.
func (m *MemoryProvider) AddSpecial(specialPath string, typeBits fs.FileMode) {
	absPath := m.abs(specialPath)
	m.entries[absPath] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(absPath),
			Path:    absPath,
			Mode:    0o644 | typeBits,
			ModTime: time.Now(),
		},
	}
	m.ensureParents(absPath)
}

// Deny marks a directory so that listing it fails with a permission error.
// Stat on the directory itself still succeeds, matching a directory with
// the execute bit but not the read bit.
func (m *MemoryProvider) Deny(dirPath string) {
	absPath := m.abs(dirPath)
	entry, ok := m.entries[absPath]
	if !ok {
		m.AddDir(dirPath)
		entry = m.entries[absPath]
	}
	entry.denied = true
}

func (m *MemoryProvider) ensureParents(childPath string) {
	dir := path.Dir(childPath)
	if dir == childPath || dir == "/" || dir == "." {
		return
	}
	if _, exists := m.entries[dir]; exists {
		return
	}
	m.entries[dir] = &memEntry{
		desc: EntryDescriptor{
			Name:    path.Base(dir),
			Path:    dir,
			Mode:    0o755 | fs.ModeDir,
			ModTime: time.Now(),
		},
	}
	m.ensureParents(dir)
}

// Stat implements Provider.Stat with lstat semantics.
func (m *MemoryProvider) Stat(statPath string) (EntryDescriptor, error) {
	entry, ok := m.entries[m.abs(statPath)]
	if !ok {
		return EntryDescriptor{}, fmt.Errorf("lstat %s: no such file or directory", statPath)
	}
	return entry.desc, nil
}

// List implements Provider.List, returning children sorted by name.
func (m *MemoryProvider) List(dirPath string) ([]EntryDescriptor, error) {
	absPath := m.abs(dirPath)

	entry, ok := m.entries[absPath]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", dirPath)
	}
	if !entry.desc.IsDir() {
		return nil, fmt.Errorf("open %s: not a directory", dirPath)
	}
	if entry.denied {
		return nil, fmt.Errorf("open %s: permission denied", dirPath)
	}

	var children []EntryDescriptor
	for p, e := range m.entries {
		if path.Dir(p) == absPath && p != absPath {
			children = append(children, e.desc)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children, nil
}

// ReadLink implements Provider.ReadLink, resolving chained links with the
// same hop limit the kernel applies.
func (m *MemoryProvider) ReadLink(linkPath string) (string, error) {
	const maxHops = 40

	current := m.abs(linkPath)
	for hop := 0; hop < maxHops; hop++ {
		entry, ok := m.entries[current]
		if !ok {
			return "", fmt.Errorf("readlink %s: no such file or directory", linkPath)
		}
		if !entry.desc.IsSymlink() {
			return current, nil
		}

		target := entry.target
		if !strings.HasPrefix(target, "/") {
			target = path.Join(path.Dir(current), target)
		}
		current = path.Clean(target)
	}

	return "", fmt.Errorf("readlink %s: too many levels of symbolic links", linkPath)
}
