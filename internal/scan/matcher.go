package scan

import (
	"strings"

	"github.com/dumblebots/fss/pkg/fss"
)

// Matcher decides whether an entry's name qualifies under the configured
// search mode. Matching filters the display set, never the traversal set:
// the walker descends into non-matching directories so that matching
// descendants are still found.
type Matcher struct {
	rule fss.MatchRule
}

// NewMatcher creates a matcher for the given rule.
func NewMatcher(rule fss.MatchRule) Matcher {
	return Matcher{rule: rule}
}

// Active reports whether a search mode is configured. An inactive matcher
// matches every name.
func (m Matcher) Active() bool {
	return m.rule.Active()
}

// Matches reports whether name qualifies. All comparisons are
// case-sensitive; no mode is fuzzy or glob-based.
func (m Matcher) Matches(name string) bool {
	switch m.rule.Mode {
	case fss.MatchExact:
		return name == m.rule.Pattern
	case fss.MatchNoExt:
		return stripExtension(name) == m.rule.Pattern
	case fss.MatchContains:
		return strings.Contains(name, m.rule.Pattern)
	default:
		return true
	}
}

// stripExtension removes the last extension segment from name. Only the
// final '.' separates the extension, and a dot at index 0 (dotfiles) is
// part of the name, not a separator.
func stripExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name
	}
	return name[:idx]
}
