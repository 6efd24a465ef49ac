package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/skillgraph"
	"github.com/abhisek/sqlskills/internal/ui/components"
	"github.com/abhisek/sqlskills/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		t := e.tracker
		g := t.Graph()
		snap := t.Snapshot()
		out := cmd.OutOrStdout()

		prof := t.Proficiency()
		lipgloss.Fprintln(out, theme.Title.Render("SQL proficiency"))
		lipgloss.Fprintln(out, components.ScoreBar{
			Label:      "Overall",
			LabelWidth: 24,
			Score:      mastery.Scored(prof),
			Width:      30,
		}.View())
		fmt.Fprintf(out, "Skills attempted: %d/%d, answers: %d\n", snap.Attempted(), snap.Len(), snap.TotalAttempts())
		if t.InterviewPrepUnlocked() {
			lipgloss.Fprintln(out, theme.Heading.Render("Interview Prep Mode: unlocked"))
		} else {
			fmt.Fprintf(out, "Interview Prep Mode unlocks at %.0f%% proficiency\n", mastery.InterviewPrepThreshold)
		}
		if at := t.LastSessionAt(); at != nil {
			fmt.Fprintf(out, "Last session: %s\n", at.Local().Format("2006-01-02 15:04"))
		}

		if earned := t.EarnedBadges(); len(earned) > 0 {
			lipgloss.Fprintln(out, "\n"+theme.Title.Render("Badges"))
			for _, b := range earned {
				lipgloss.Fprintln(out, "  "+formatBadge(b))
			}
		}

		for _, tier := range skillgraph.AllTiers() {
			lipgloss.Fprintln(out, "\n"+theme.Title.Render(fmt.Sprintf("%s (x%.1f)", tier.DisplayName(), tier.Weight())))
			for _, s := range g.ByTier(tier) {
				p, _ := snap.Get(s.ID)
				lipgloss.Fprintln(out, components.ScoreBar{
					Label:      "  " + s.Name,
					LabelWidth: 24,
					Score:      p.Score,
					Width:      20,
				}.View())
			}
		}

		if ids := t.NeedingAttention(mastery.DefaultAttentionLimit); len(ids) > 0 {
			fmt.Fprintln(out)
			printSkillNames(out, "Needs work", g, ids)
		}
		if ids := t.Recommended(); len(ids) > 0 {
			printSkillNames(out, "Try next", g, ids)
		}
		return nil
	},
}
