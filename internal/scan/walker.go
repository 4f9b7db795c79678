package scan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dumblebots/fss/internal/files/filesystem"
	"github.com/dumblebots/fss/pkg/fss"
)

// EmitFunc receives each display record as it is discovered. Returning an
// error aborts the walk; the error is propagated to the caller unchanged.
type EmitFunc func(fss.Record) error

// TallyFunc receives, after a directory's children have been walked, the
// counts of entries that were hidden by the visibility flags.
type TallyFunc func(fss.DirTally) error

// Walker performs the depth-first walk: classification, visibility and
// match filtering, depth control, size annotation and record emission.
// A Walker is stateless between invocations and may be reused.
type Walker struct {
	provider filesystem.Provider
	sizer    *Sizer
	logger   fss.Logger

	// OnDirTally, when set, is invoked once per fully-walked directory
	// (including the root, at depth 0) whose listing hid at least one
	// entry. The renderer uses it for grouped placeholder rows.
	OnDirTally TallyFunc
}

// NewWalker creates a walker over the given provider.
// Panics if provider or logger is nil.
func NewWalker(provider filesystem.Provider, logger fss.Logger) *Walker {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		provider: provider,
		sizer:    NewSizer(provider),
		logger:   logger,
	}
}

// walkState carries the per-invocation context so that Walker itself stays
// reusable.
type walkState struct {
	opts    fss.ScanOptions
	matcher Matcher
	emit    EmitFunc
	report  *fss.ScanReport
}

// hiddenTally accumulates entries suppressed by visibility flags within a
// single directory.
type hiddenTally struct {
	tally fss.Tally
	bytes int64
}

// Walk runs one scan. The returned report summarizes the traversal even
// when individual entries produced recoverable errors; a non-nil error
// means the scan as a whole failed (invalid options, unreadable root, or
// an emit callback that gave up).
func (w *Walker) Walk(opts fss.ScanOptions, emit EmitFunc) (*fss.ScanReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if emit == nil {
		panic("emit cannot be nil")
	}

	start := time.Now()
	st := &walkState{
		opts:    opts,
		matcher: NewMatcher(opts.Match),
		emit:    emit,
		report: &fss.ScanReport{
			RunID:    uuid.New(),
			Root:     opts.Root,
			Searched: opts.Match.Active(),
		},
	}
	w.logger.Verbose("scan %s: walking %q (depth mode %d)", st.report.RunID, opts.Root, opts.Depth.Mode)

	rootDesc, err := w.provider.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %v: %w", opts.Root, err, fss.ErrRootAccess)
	}
	if !rootDesc.IsDir() {
		return nil, fmt.Errorf("%q: %w", opts.Root, fss.ErrNotDirectory)
	}

	children, err := w.provider.List(rootDesc.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %v: %w", opts.Root, err, fss.ErrRootAccess)
	}

	if opts.Depth.AllowsChildren(0) {
		if err := w.walkChildren(st, rootDesc.Path, children, 0); err != nil {
			return nil, err
		}
	}

	st.report.Elapsed = time.Since(start)
	w.logger.Verbose("scan %s: done in %s (%d entries traversed)",
		st.report.RunID, st.report.Elapsed, st.report.Recursive.Total())
	return st.report, nil
}

// walkChildren walks the already-listed children of the directory at
// dirPath, which itself sits at dirDepth.
func (w *Walker) walkChildren(st *walkState, dirPath string, children []filesystem.EntryDescriptor, dirDepth int) error {
	var hidden hiddenTally

	for _, child := range children {
		if err := w.walkEntry(st, child, dirDepth+1, &hidden); err != nil {
			return err
		}
	}

	if w.OnDirTally != nil && hidden.tally.Total() > 0 {
		return w.OnDirTally(fss.DirTally{
			Path:            dirPath,
			Depth:           dirDepth,
			Hidden:          hidden.tally,
			HiddenFileBytes: hidden.bytes,
		})
	}
	return nil
}

func (w *Walker) walkEntry(st *walkState, desc filesystem.EntryDescriptor, depth int, hidden *hiddenTally) error {
	kind, special := Classify(desc.Mode)

	bumpTally(&st.report.Recursive, kind)
	if depth == 1 {
		bumpTally(&st.report.TopLevel, kind)
	}

	matched := st.matcher.Matches(desc.Name)

	if kind != fss.KindDirectory {
		return w.walkLeaf(st, desc, depth, kind, special, matched, hidden)
	}

	if matched && st.matcher.Active() {
		bumpTally(&st.report.Matched, kind)
	}

	rec := newRecord(desc, depth, kind, special)

	// Size computation covers the full subtree regardless of the
	// display-depth limit.
	if st.opts.DirSize {
		total, partial := w.sizer.Compute(desc.Path)
		rec.Size = &total
		rec.SizePartial = partial
		if partial && st.opts.ShowErrors {
			w.logger.Error("size of %q is a lower bound: part of the subtree could not be read", desc.Path)
		}
	}

	descend := st.opts.Depth.AllowsChildren(depth)
	if !descend {
		if matched {
			return st.emit(rec)
		}
		return nil
	}

	children, err := w.provider.List(desc.Path)
	if err != nil {
		// Recoverable: the directory is shown with an error marker
		// and the walk continues with its siblings.
		rec.Err = err
		if st.opts.ShowErrors {
			w.logger.Error("error while iterating over %q: %v", desc.Path, err)
		}
		if matched {
			return st.emit(rec)
		}
		return nil
	}

	if matched {
		if err := st.emit(rec); err != nil {
			return err
		}
	}

	// Directories are always descended into, matching or not, so that
	// matching descendants several levels down are still found.
	return w.walkChildren(st, desc.Path, children, depth)
}

// walkLeaf handles every non-directory kind: visibility filtering, match
// filtering, and symlink target resolution.
func (w *Walker) walkLeaf(st *walkState, desc filesystem.EntryDescriptor, depth int, kind fss.EntryKind, special fss.SpecialKind, matched bool, hidden *hiddenTally) error {
	visible := false
	switch kind {
	case fss.KindRegularFile:
		visible = st.opts.ShowFiles
	case fss.KindSymlink:
		visible = st.opts.ShowSymlinks
	case fss.KindSpecial:
		visible = st.opts.ShowSpecial
	}

	if !visible {
		bumpTally(&hidden.tally, kind)
		if kind == fss.KindRegularFile {
			hidden.bytes += desc.Size
		}
		return nil
	}
	if !matched {
		return nil
	}

	if st.matcher.Active() {
		bumpTally(&st.report.Matched, kind)
	}

	rec := newRecord(desc, depth, kind, special)

	switch kind {
	case fss.KindRegularFile:
		size := desc.Size
		rec.Size = &size
	case fss.KindSymlink:
		target, err := w.provider.ReadLink(desc.Path)
		if err != nil {
			rec.Err = err
			if st.opts.ShowErrors {
				w.logger.Error("error while reading target of symlink %q: %v", desc.Path, err)
			}
			break
		}
		rec.LinkTarget = target
		if targetDesc, err := w.provider.Stat(target); err == nil {
			rec.TargetIsDir = targetDesc.IsDir()
		}
	}

	return st.emit(rec)
}

func newRecord(desc filesystem.EntryDescriptor, depth int, kind fss.EntryKind, special fss.SpecialKind) fss.Record {
	return fss.Record{
		Name:    desc.Name,
		Path:    desc.Path,
		Depth:   depth,
		Kind:    kind,
		Special: special,
		Mode:    desc.Mode,
		ModTime: desc.ModTime,
	}
}

func bumpTally(t *fss.Tally, kind fss.EntryKind) {
	switch kind {
	case fss.KindDirectory:
		t.Dirs++
	case fss.KindRegularFile:
		t.Files++
	case fss.KindSymlink:
		t.Symlinks++
	case fss.KindSpecial:
		t.Special++
	}
}
