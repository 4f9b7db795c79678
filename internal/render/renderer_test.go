package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dumblebots/fss/internal/render"
	"github.com/dumblebots/fss/pkg/fss"
)

func sizePtr(n int64) *int64 { return &n }

func renderOne(t *testing.T, opts fss.ScanOptions, rec fss.Record) string {
	t.Helper()
	var buf bytes.Buffer
	r := render.New(&buf, opts, render.PlainStyles())
	assert.NoError(t, r.Record(rec))
	return buf.String()
}

func TestRecordRegularFile(t *testing.T) {
	got := renderOne(t, fss.ScanOptions{}, fss.Record{
		Name:  "b.txt",
		Path:  "/x/b.txt",
		Depth: 1,
		Kind:  fss.KindRegularFile,
		Size:  sizePtr(1234567),
	})

	want := fmt.Sprintf("%20s    %s\n", "1,234,567", "b.txt")
	assert.Equal(t, want, got)
}

func TestRecordDirectory(t *testing.T) {
	t.Run("without size column", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{}, fss.Record{
			Name: "sub", Path: "/x/sub", Depth: 1, Kind: fss.KindDirectory,
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "", "<sub>"), got)
	})

	t.Run("with size column", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{DirSize: true}, fss.Record{
			Name: "sub", Path: "/x/sub", Depth: 1, Kind: fss.KindDirectory,
			Size: sizePtr(4096),
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "4,096", "<sub>"), got)
	})

	t.Run("partial size carries marker", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{DirSize: true}, fss.Record{
			Name: "sub", Path: "/x/sub", Depth: 1, Kind: fss.KindDirectory,
			Size: sizePtr(1024), SizePartial: true,
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "1,024*", "<sub>"), got)
	})

	t.Run("unlistable directory shows ERROR", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{DirSize: true}, fss.Record{
			Name: "sub", Path: "/x/sub", Depth: 1, Kind: fss.KindDirectory,
			Size: sizePtr(0), Err: errors.New("permission denied"),
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "ERROR", "<sub>"), got)
	})
}

func TestRecordSymlink(t *testing.T) {
	t.Run("file target", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{}, fss.Record{
			Name: "ln", Path: "/x/ln", Depth: 1, Kind: fss.KindSymlink,
			LinkTarget: "/x/real.txt",
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "SYMLINK", "ln -> /x/real.txt"), got)
	})

	t.Run("directory target uses brackets", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{}, fss.Record{
			Name: "ln", Path: "/x/ln", Depth: 1, Kind: fss.KindSymlink,
			LinkTarget: "/x/real", TargetIsDir: true,
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "SYMLINK", "<ln> -> </x/real>"), got)
	})

	t.Run("unresolvable target shows name only", func(t *testing.T) {
		got := renderOne(t, fss.ScanOptions{}, fss.Record{
			Name: "ln", Path: "/x/ln", Depth: 1, Kind: fss.KindSymlink,
			Err: errors.New("no such file or directory"),
		})
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "SYMLINK", "ln"), got)
	})
}

func TestRecordSpecial(t *testing.T) {
	tests := []struct {
		special fss.SpecialKind
		label   string
	}{
		{special: fss.SpecialSocket, label: "SOCKET"},
		{special: fss.SpecialBlockDevice, label: "BLOCK DEVICE"},
		{special: fss.SpecialCharDevice, label: "CHAR DEVICE"},
		{special: fss.SpecialFifo, label: "FIFO PIPE"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := renderOne(t, fss.ScanOptions{}, fss.Record{
				Name: "dev0", Path: "/x/dev0", Depth: 1,
				Kind: fss.KindSpecial, Special: tt.special,
			})
			assert.Equal(t, fmt.Sprintf("%20s    %s\n", tt.label, "dev0"), got)
		})
	}
}

func TestRecordIndentation(t *testing.T) {
	got := renderOne(t, fss.ScanOptions{}, fss.Record{
		Name: "deep.txt", Path: "/x/a/b/deep.txt", Depth: 3,
		Kind: fss.KindRegularFile, Size: sizePtr(5),
	})

	// two levels below the top level, 4 spaces each
	want := fmt.Sprintf("%20s    %s%s\n", "5", strings.Repeat(" ", 8), "deep.txt")
	assert.Equal(t, want, got)
}

func TestRecordAbsoluteMode(t *testing.T) {
	got := renderOne(t, fss.ScanOptions{Absolute: true}, fss.Record{
		Name: "deep.txt", Path: "/x/a/b/deep.txt", Depth: 3,
		Kind: fss.KindRegularFile, Size: sizePtr(5),
	})

	want := fmt.Sprintf("%20s    %s\n", "5", "/x/a/b/deep.txt")
	assert.Equal(t, want, got)
}

func TestRecordPermissionAndTimeColumns(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC)

	got := renderOne(t, fss.ScanOptions{Permissions: true, ModTime: true}, fss.Record{
		Name: "b.txt", Path: "/x/b.txt", Depth: 1,
		Kind: fss.KindRegularFile, Size: sizePtr(12),
		Mode: 0o644, ModTime: ts,
	})

	want := "rw-r--r--   " + "  Mar 05 2024  09:07" + fmt.Sprintf("%20s    %s\n", "12", "b.txt")
	assert.Equal(t, want, got)
}

func TestDirTally(t *testing.T) {
	tally := fss.DirTally{
		Path:  "/x/sub",
		Depth: 1,
		Hidden: fss.Tally{
			Files:    1500,
			Symlinks: 2,
			Special:  1,
		},
		HiddenFileBytes: 123456,
	}

	t.Run("without size column", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.New(&buf, fss.ScanOptions{}, render.PlainStyles())
		assert.NoError(t, r.DirTally(tally))

		want := fmt.Sprintf("%20s    %s%s\n", "", "    ", "<1,500 files>") +
			fmt.Sprintf("%20s    %s%s\n", "", "    ", "<2 symlinks>") +
			fmt.Sprintf("%20s    %s%s\n", "", "    ", "<1 special entries>")
		assert.Equal(t, want, buf.String())
	})

	t.Run("with size column", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.New(&buf, fss.ScanOptions{DirSize: true}, render.PlainStyles())
		assert.NoError(t, r.DirTally(tally))

		want := fmt.Sprintf("%20s    %s%s\n", "123,456", "    ", "<1,500 files>") +
			fmt.Sprintf("%20s    %s%s\n", "-", "    ", "<2 symlinks>") +
			fmt.Sprintf("%20s    %s%s\n", "-", "    ", "<1 special entries>")
		assert.Equal(t, want, buf.String())
	})

	t.Run("zero counts emit nothing", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.New(&buf, fss.ScanOptions{}, render.PlainStyles())
		assert.NoError(t, r.DirTally(fss.DirTally{Path: "/x", Depth: 0}))
		assert.Empty(t, buf.String())
	})

	t.Run("top level rows carry no indent", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.New(&buf, fss.ScanOptions{}, render.PlainStyles())
		assert.NoError(t, r.DirTally(fss.DirTally{
			Path: "/x", Depth: 0, Hidden: fss.Tally{Files: 3},
		}))
		assert.Equal(t, fmt.Sprintf("%20s    %s\n", "", "<3 files>"), buf.String())
	})

	t.Run("column padding follows active columns", func(t *testing.T) {
		var buf bytes.Buffer
		opts := fss.ScanOptions{Permissions: true, ModTime: true}
		r := render.New(&buf, opts, render.PlainStyles())
		assert.NoError(t, r.DirTally(fss.DirTally{
			Path: "/x", Depth: 0, Hidden: fss.Tally{Files: 3},
		}))

		want := strings.Repeat(" ", 12) + strings.Repeat(" ", 20) +
			fmt.Sprintf("%20s    %s\n", "", "<3 files>")
		assert.Equal(t, want, buf.String())
	})
}

func TestSummary(t *testing.T) {
	t.Run("top level only", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.New(&buf, fss.ScanOptions{}, render.PlainStyles())

		assert.NoError(t, r.Summary(&fss.ScanReport{
			Root:     "/x",
			TopLevel: fss.Tally{Files: 2, Symlinks: 1, Dirs: 1},
		}))

		want := "\n" +
			"Summary of \"/x\"\n" +
			"<2 files>\n" +
			"<1 symlinks>\n" +
			"<0 special files>\n" +
			"<1 subdirectories>\n" +
			"<4 total entries>\n" +
			"\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("recursive adds grand totals", func(t *testing.T) {
		var buf bytes.Buffer
		opts := fss.ScanOptions{Depth: fss.DepthLimit{Mode: fss.DepthUnlimited}}
		r := render.New(&buf, opts, render.PlainStyles())

		assert.NoError(t, r.Summary(&fss.ScanReport{
			Root:      "/x",
			TopLevel:  fss.Tally{Files: 1, Dirs: 1},
			Recursive: fss.Tally{Files: 1200, Dirs: 34},
		}))

		out := buf.String()
		assert.Contains(t, out, "Summary of \"/x\"\n")
		assert.Contains(t, out, "Including subdirectories\n")
		assert.Contains(t, out, "<1,200 files>\n")
		assert.Contains(t, out, "<1,234 total entries>\n")
	})

	t.Run("search mode reports matches then traversal", func(t *testing.T) {
		var buf bytes.Buffer
		opts := fss.ScanOptions{
			Depth: fss.DepthLimit{Mode: fss.DepthUnlimited},
			Match: fss.MatchRule{Mode: fss.MatchExact, Pattern: "b.txt"},
		}
		r := render.New(&buf, opts, render.PlainStyles())

		assert.NoError(t, r.Summary(&fss.ScanReport{
			Root:      "/x",
			Searched:  true,
			Matched:   fss.Tally{Files: 2},
			Recursive: fss.Tally{Files: 40, Dirs: 5},
		}))

		out := buf.String()
		matchIdx := strings.Index(out, "Summary of matching entries")
		travIdx := strings.Index(out, "Summary of traversal of \"/x\"")
		assert.GreaterOrEqual(t, matchIdx, 0)
		assert.Greater(t, travIdx, matchIdx)
		assert.Contains(t, out, "<2 files>\n")
		assert.Contains(t, out, "<45 total entries>\n")
	})
}
