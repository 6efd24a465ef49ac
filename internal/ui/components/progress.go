package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/ui/theme"
)

// ScoreBar renders a skill score as a fixed-width bar coloured by band.
type ScoreBar struct {
	Label      string
	LabelWidth int
	Score      mastery.Score
	Width      int // bar cells, excluding label and value
}

// NewScoreBar creates a score bar.
func NewScoreBar(label string, score mastery.Score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the bar.
func (b ScoreBar) View() string {
	var sb strings.Builder

	if b.Label != "" {
		label := b.Label
		if pad := b.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(label))
		sb.WriteString("  ")
	}

	width := max(b.Width, 4)
	band := theme.Band(mastery.ColorOf(b.Score))

	v, scored := b.Score.Value()
	filled := min(max(int(float64(width)*v/mastery.MaxScore), 0), width)

	sb.WriteString(band.Render(strings.Repeat("█", filled)))
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled)))

	value := "  --"
	if scored {
		value = fmt.Sprintf("%4.0f", v)
	}
	sb.WriteString(" ")
	sb.WriteString(band.Render(value))
	return sb.String()
}
