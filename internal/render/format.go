package render

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/dumblebots/fss/pkg/fss"
)

// permTriplets maps each 3-bit permission group to its rwx form.
var permTriplets = [8]string{"---", "--x", "-w-", "-wx", "r--", "r-x", "rw-", "rwx"}

// GroupedInt formats n with comma thousands separators, e.g. 1234567
// becomes "1,234,567".
func GroupedInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead == 0 {
			lead = 3
		}
		b.WriteString(s[:lead])
		for i := lead; i < len(s); i += 3 {
			b.WriteByte(',')
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// PermString renders the owner, group and other permission bits as three
// rwx triplets, e.g. "rwxr-xr--".
func PermString(mode fs.FileMode) string {
	perm := mode.Perm()
	return permTriplets[(perm>>6)&7] + permTriplets[(perm>>3)&7] + permTriplets[perm&7]
}

// ModTimeString renders the modification time right-aligned in its column.
func ModTimeString(t time.Time) string {
	return fmt.Sprintf("%*s", fss.ModTimeColWidth, t.Format(fss.ModTimeLayout))
}
