package cmd

import (
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/session"
	"github.com/abhisek/sqlskills/internal/skillgraph"
	"github.com/abhisek/sqlskills/internal/ui/components"
	"github.com/abhisek/sqlskills/internal/ui/theme"
)

func scoreBar(s mastery.Score, width int) string {
	return components.NewScoreBar("", s, width).View()
}

func formatDelta(d float64) string {
	switch {
	case d > 0:
		return theme.Band(mastery.ColorGreen).Render(fmt.Sprintf("+%.0f", d))
	case d < 0:
		return theme.Band(mastery.ColorRed).Render(fmt.Sprintf("%.0f", d))
	default:
		return theme.Dim.Render("±0")
	}
}

func formatBadge(b badges.Badge) string {
	return fmt.Sprintf("%s %s", b.Icon(), theme.Heading.Render(b.Name))
}

// printSummary writes a finished session summary.
func printSummary(w io.Writer, g *skillgraph.Graph, sum *session.Summary) {
	lipgloss.Fprintln(w, theme.Title.Render("Session summary"))
	fmt.Fprintf(w, "Questions:    %d (%d correct, %.0f%%)\n",
		sum.QuestionsAttempted, sum.CorrectCount, sum.Accuracy*100)
	fmt.Fprintf(w, "Duration:     %s\n", sum.Duration.Round(time.Second))
	lipgloss.Fprintln(w, fmt.Sprintf("Proficiency:  %.1f -> %.1f (%s)",
		sum.ProficiencyBefore, sum.ProficiencyAfter, formatDelta(sum.ProficiencyDelta)))

	printSkillNames(w, "Improved", g, sum.SkillsImproved)
	printSkillNames(w, "Declined", g, sum.SkillsDeclined)

	for _, b := range sum.NewBadges {
		lipgloss.Fprintln(w, "New badge:    "+formatBadge(b))
	}
	if sum.InterviewPrepUnlocked {
		lipgloss.Fprintln(w, theme.Heading.Render("Interview Prep Mode unlocked!"))
	}
	lipgloss.Fprintln(w, theme.Hint.Render(sum.SuggestedFocus))
}

func printSkillNames(w io.Writer, label string, g *skillgraph.Graph, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "%-13s ", label+":")
	for i, id := range ids {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, g.Name(id))
	}
	fmt.Fprintln(w)
}
