package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dumblebots/fss/pkg/fss"
)

// permColWidth is the permission column: three rwx triplets plus padding.
const permColWidth = 12

// Renderer writes scan records as formatted lines. It holds no filesystem
// state and may be handed records from any source.
type Renderer struct {
	w      io.Writer
	opts   fss.ScanOptions
	styles Styles
}

// New returns a Renderer writing to w. Pass DefaultStyles when stdout is a
// terminal and PlainStyles otherwise.
func New(w io.Writer, opts fss.ScanOptions, styles Styles) *Renderer {
	if w == nil {
		panic("render: nil writer")
	}
	return &Renderer{w: w, opts: opts, styles: styles}
}

// Record writes one line for the given record.
func (r *Renderer) Record(rec fss.Record) error {
	var b strings.Builder

	if r.opts.Permissions {
		b.WriteString(PermString(rec.Mode))
		b.WriteString("   ")
	}
	if r.opts.ModTime {
		b.WriteString(ModTimeString(rec.ModTime))
	}

	fmt.Fprintf(&b, "%*s    ", fss.ValueColWidth, r.valueColumn(rec))

	if !r.opts.Absolute && rec.Depth > 1 {
		b.WriteString(strings.Repeat(" ", fss.IndentColWidth*(rec.Depth-1)))
	}
	b.WriteString(r.nameColumn(rec))
	b.WriteByte('\n')

	_, err := io.WriteString(r.w, b.String())
	return err
}

// valueColumn renders the right-aligned left column: a size for files and
// sized directories, a kind label for symlinks and special entries.
func (r *Renderer) valueColumn(rec fss.Record) string {
	switch rec.Kind {
	case fss.KindDirectory:
		if !r.opts.DirSize {
			return ""
		}
		if rec.Err != nil || rec.Size == nil {
			return "ERROR"
		}
		if rec.SizePartial {
			return GroupedInt(*rec.Size) + "*"
		}
		return GroupedInt(*rec.Size)
	case fss.KindRegularFile:
		if rec.Size == nil {
			return ""
		}
		return GroupedInt(*rec.Size)
	case fss.KindSymlink:
		return "SYMLINK"
	case fss.KindSpecial:
		return rec.Special.Label()
	}
	return ""
}

// nameColumn renders the entry name, styled by kind. Directories are
// enclosed in angle brackets, symlinks show their resolved target.
func (r *Renderer) nameColumn(rec fss.Record) string {
	name := rec.Name
	if r.opts.Absolute {
		name = rec.Path
	}

	switch rec.Kind {
	case fss.KindDirectory:
		return r.styles.Directory.Render("<" + name + ">")
	case fss.KindSymlink:
		if rec.LinkTarget == "" {
			// target could not be resolved
			return r.styles.Error.Render(name)
		}
		if rec.TargetIsDir {
			return r.styles.Symlink.Render("<" + name + "> -> <" + rec.LinkTarget + ">")
		}
		return r.styles.Symlink.Render(name + " -> " + rec.LinkTarget)
	case fss.KindSpecial:
		return r.styles.Special.Render(name)
	}
	return name
}

// DirTally writes the aggregate rows for entry kinds hidden inside a
// directory, e.g. "<3 files>" when files are not being shown. The rows
// are indented as logical children of the directory.
func (r *Renderer) DirTally(t fss.DirTally) error {
	fileVal := ""
	otherVal := ""
	if r.opts.DirSize {
		// hidden files are shown as one logical sized entry
		fileVal = GroupedInt(t.HiddenFileBytes)
		otherVal = "-"
	}

	var b strings.Builder
	if t.Hidden.Files > 0 {
		r.tallyRow(&b, fileVal, t.Depth, fmt.Sprintf("<%s files>", GroupedInt(int64(t.Hidden.Files))))
	}
	if t.Hidden.Symlinks > 0 {
		r.tallyRow(&b, otherVal, t.Depth, fmt.Sprintf("<%s symlinks>", GroupedInt(int64(t.Hidden.Symlinks))))
	}
	if t.Hidden.Special > 0 {
		r.tallyRow(&b, otherVal, t.Depth, fmt.Sprintf("<%s special entries>", GroupedInt(int64(t.Hidden.Special))))
	}
	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) tallyRow(b *strings.Builder, value string, dirDepth int, label string) {
	if r.opts.Permissions {
		b.WriteString(strings.Repeat(" ", permColWidth))
	}
	if r.opts.ModTime {
		b.WriteString(strings.Repeat(" ", fss.ModTimeColWidth))
	}
	fmt.Fprintf(b, "%*s    ", fss.ValueColWidth, value)
	if dirDepth > 0 {
		b.WriteString(strings.Repeat(" ", fss.IndentColWidth*dirDepth))
	}
	b.WriteString(r.styles.Aggregate.Render(label))
	b.WriteByte('\n')
}

// Summary writes the end-of-scan count blocks. In search mode it reports
// the matched entries followed by everything traversed; otherwise it
// reports the top level followed, when recursion was enabled, by the
// grand totals.
func (r *Renderer) Summary(rep *fss.ScanReport) error {
	var b strings.Builder
	if rep.Searched {
		b.WriteByte('\n')
		r.summaryBlock(&b, "Summary of matching entries", rep.Matched)
		r.summaryBlock(&b, fmt.Sprintf("Summary of traversal of %q", rep.Root), rep.Recursive)
	} else {
		b.WriteByte('\n')
		r.summaryBlock(&b, fmt.Sprintf("Summary of %q", rep.Root), rep.TopLevel)
		if r.opts.Depth.Mode != fss.DepthNone {
			r.summaryBlock(&b, "Including subdirectories", rep.Recursive)
		}
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) summaryBlock(b *strings.Builder, title string, t fss.Tally) {
	b.WriteString(title)
	b.WriteByte('\n')
	fmt.Fprintf(b, "<%s files>\n", GroupedInt(int64(t.Files)))
	fmt.Fprintf(b, "<%s symlinks>\n", GroupedInt(int64(t.Symlinks)))
	fmt.Fprintf(b, "<%s special files>\n", GroupedInt(int64(t.Special)))
	fmt.Fprintf(b, "<%s subdirectories>\n", GroupedInt(int64(t.Dirs)))
	fmt.Fprintf(b, "<%s total entries>\n", GroupedInt(int64(t.Total())))
	b.WriteByte('\n')
}
