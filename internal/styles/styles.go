package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

var (
	// Header styles section banners in demo and command output.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D79F6"))

	// Label styles attribute names in key/value listings.
	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))

	// Dim styles secondary text such as timestamps and hints.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B6B6B"))

	// Warn styles warnings and empty-state messages.
	Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
)

// PadRight pads s with spaces to the given display width, accounting for
// wide runes. Strings already at or past the width get a single
// trailing space so columns never run together.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}
