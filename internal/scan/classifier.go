package scan

import (
	"io/fs"

	"github.com/dumblebots/fss/pkg/fss"
)

// Classify maps a raw file mode to the reported entry kind. Precedence
// when multiple type bits could apply: symlink-ness is checked first (a
// link pointing at a directory is still a symlink, never resolved), then
// directory, then regular file; everything else is a special node.
func Classify(mode fs.FileMode) (fss.EntryKind, fss.SpecialKind) {
	switch {
	case mode&fs.ModeSymlink != 0:
		return fss.KindSymlink, fss.SpecialNone
	case mode.IsDir():
		return fss.KindDirectory, fss.SpecialNone
	case mode.IsRegular():
		return fss.KindRegularFile, fss.SpecialNone
	}

	// Char devices carry both device bits, so check them first.
	switch {
	case mode&fs.ModeSocket != 0:
		return fss.KindSpecial, fss.SpecialSocket
	case mode&fs.ModeCharDevice != 0:
		return fss.KindSpecial, fss.SpecialCharDevice
	case mode&fs.ModeDevice != 0:
		return fss.KindSpecial, fss.SpecialBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return fss.KindSpecial, fss.SpecialFifo
	}

	return fss.KindSpecial, fss.SpecialOther
}
