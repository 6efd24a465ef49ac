package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/mastery"
	"github.com/abhisek/sqlskills/internal/skillgraph"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by tier)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tierFlag, _ := cmd.Flags().GetString("tier")
		g := skillgraph.Default()

		skills := g.Skills()
		if tierFlag != "" {
			tier, err := skillgraph.ParseTier(tierFlag)
			if err != nil {
				return err
			}
			skills = g.ByTier(tier)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-22s  %-24s  %-13s  %s\n", "ID", "Name", "Tier", "Prerequisites")
		fmt.Fprintln(out, strings.Repeat("\u2500", 90))

		for _, s := range skills {
			prereqs := strings.Join(s.Prerequisites, ", ")
			if prereqs == "" {
				prereqs = "-"
			}
			fmt.Fprintf(out, "%-22s  %-24s  %-13s  %s\n", s.ID, s.Name, s.Tier.DisplayName(), prereqs)
		}

		fmt.Fprintf(out, "\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show a skill with your progress on it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		g := e.tracker.Graph()
		skill, ok := g.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[0])
		}
		snap := e.tracker.Snapshot()
		prog, _ := snap.Get(skill.ID)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", skill.Name, skill.ID)
		fmt.Fprintf(out, "Tier:        %s (weight %.1f)\n", skill.Tier.DisplayName(), skill.Tier.Weight())
		fmt.Fprintf(out, "About:       %s\n", skill.Description)
		fmt.Fprintf(out, "Score:       %s\n", scoreBar(prog.Score, 20))
		fmt.Fprintf(out, "Attempts:    %d\n", prog.Attempts)
		if prog.LastPracticedAt != nil {
			fmt.Fprintf(out, "Practiced:   %s\n", prog.LastPracticedAt.Local().Format("2006-01-02 15:04"))
		}
		if events, err := e.events(); err == nil {
			acc, n, err := events.SkillAccuracy(cmd.Context(), skill.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				fmt.Fprintf(out, "Accuracy:    %.0f%% over %d answers\n", acc*100, n)
			}
		}

		unlocked := "yes"
		if !g.PrerequisitesMet(skill.ID, snap) {
			unlocked = fmt.Sprintf("no (prerequisites need %.0f+)", skillgraph.UnlockThreshold)
		}
		fmt.Fprintf(out, "Unlocked:    %s\n", unlocked)

		printSkillRefs(out, "Requires", g.Prerequisites(skill.ID), snap)
		printSkillRefs(out, "Unlocks", g.Dependents(skill.ID), snap)
		return nil
	},
}

func printSkillRefs(out io.Writer, label string, skills []skillgraph.Skill, snap *mastery.Snapshot) {
	if len(skills) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", label)
	for _, s := range skills {
		p, _ := snap.Get(s.ID)
		fmt.Fprintf(out, "  %-24s %s\n", s.Name, scoreBar(p.Score, 10))
	}
}

func init() {
	skillListCmd.Flags().String("tier", "", "Filter by tier (foundational, intermediate, advanced, interview)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
