package render

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorDirectory = lipgloss.Color("39")  // Blue
	ColorSymlink   = lipgloss.Color("51")  // Cyan
	ColorSpecial   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles holds the lipgloss styles applied to the name side of each line.
// The zero value renders everything unstyled.
type Styles struct {
	Directory lipgloss.Style
	Symlink   lipgloss.Style
	Special   lipgloss.Style
	Error     lipgloss.Style
	Aggregate lipgloss.Style
}

// DefaultStyles returns the colored palette used when stdout is a terminal.
func DefaultStyles() Styles {
	return Styles{
		Directory: lipgloss.NewStyle().Bold(true).Foreground(ColorDirectory),
		Symlink:   lipgloss.NewStyle().Foreground(ColorSymlink),
		Special:   lipgloss.NewStyle().Foreground(ColorSpecial),
		Error:     lipgloss.NewStyle().Foreground(ColorError),
		Aggregate: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// PlainStyles returns styles that pass text through unchanged, for pipes
// and redirected output.
func PlainStyles() Styles {
	return Styles{}
}
