package scan

import (
	"testing"

	"github.com/dumblebots/fss/pkg/fss"
)

func TestMatcher_Exact(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"report.txt", "report.txt", true},
		{"report.txt", "report", false},
		{"report", "report.txt", false},
		{"Report.txt", "report.txt", false}, // case-sensitive
		{"report.txt", "my-report.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(fss.MatchRule{Mode: fss.MatchExact, Pattern: tt.pattern})
			if got := m.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) with pattern %q = %v, want %v", tt.name, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatcher_NoExt(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"report", "report.txt", true},
		{"report", "report", true},
		// Only the final dot separates the extension.
		{"report", "report.tar.gz", false},
		{"report.tar", "report.tar.gz", true},
		// A leading dot is part of the name, not an extension separator.
		{".bashrc", ".bashrc", true},
		{"", ".bashrc", false},
		{".config", ".config.bak", true},
		{"report", "Report.txt", false}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(fss.MatchRule{Mode: fss.MatchNoExt, Pattern: tt.pattern})
			if got := m.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) with pattern %q = %v, want %v", tt.name, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatcher_Contains(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"port", "report.txt", true},
		{"report.txt", "report.txt", true},
		{"", "anything", true},
		{"PORT", "report.txt", false}, // case-sensitive
		{"xyz", "report.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(fss.MatchRule{Mode: fss.MatchContains, Pattern: tt.pattern})
			if got := m.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) with pattern %q = %v, want %v", tt.name, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatcher_Inactive(t *testing.T) {
	m := NewMatcher(fss.MatchRule{})
	if m.Active() {
		t.Error("matcher with no mode should be inactive")
	}
	if !m.Matches("anything-at-all") {
		t.Error("inactive matcher must match every name")
	}
}
