package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlskills/internal/mastery"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate

	BandGray   = lipgloss.Color("#6B7280")
	BandRed    = lipgloss.Color("#F43F5E") // Rose
	BandYellow = lipgloss.Color("#EAB308")
	BandGreen  = lipgloss.Color("#22C55E")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Band returns the style for a score colour band.
func Band(c mastery.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BandColor(c))
}

// BandColor maps a score colour band to a palette colour.
func BandColor(c mastery.Color) color.Color {
	switch c {
	case mastery.ColorRed:
		return BandRed
	case mastery.ColorYellow:
		return BandYellow
	case mastery.ColorGreen:
		return BandGreen
	default:
		return BandGray
	}
}
