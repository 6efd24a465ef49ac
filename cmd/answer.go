package cmd

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/badges"
	"github.com/abhisek/sqlskills/internal/tracker"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Record one answered question",
	Long: "Record the outcome of one question against every skill it exercised.\n" +
		"Example: sqlskills answer --skill basic_joins --skill where_filtering --correct",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillIDs, _ := cmd.Flags().GetStringSlice("skill")
		correct, _ := cmd.Flags().GetBool("correct")
		hint, _ := cmd.Flags().GetBool("hint")
		if len(skillIDs) == 0 {
			return fmt.Errorf("at least one --skill is required")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		before := e.tracker.Badges()
		deltas := e.tracker.RecordAnswer(cmd.Context(), skillIDs, correct, hint)
		if len(deltas) == 0 {
			return fmt.Errorf("no known skills in %v", skillIDs)
		}
		printDeltas(cmd, e.tracker, deltas)
		printEarned(cmd, e.tracker, before)
		return nil
	},
}

func printDeltas(cmd *cobra.Command, t *tracker.Tracker, deltas map[string]float64) {
	g := t.Graph()
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return g.TopoIndex(ids[i]) < g.TopoIndex(ids[j]) })

	snap := t.Snapshot()
	out := cmd.OutOrStdout()
	for _, id := range ids {
		p, _ := snap.Get(id)
		lipgloss.Fprintln(out, fmt.Sprintf("%-24s %s %s", g.Name(id), scoreBar(p.Score, 20), formatDelta(deltas[id])))
	}
}

// printEarned announces badges earned since before.
func printEarned(cmd *cobra.Command, t *tracker.Tracker, before []string) {
	held := badges.NewSet(before...)
	for _, b := range t.EarnedBadges() {
		if !held.Has(b.ID) {
			lipgloss.Fprintln(cmd.OutOrStdout(), "Badge earned: "+formatBadge(b))
		}
	}
}

func init() {
	answerCmd.Flags().StringSlice("skill", nil, "Skill ID exercised by the question (repeatable)")
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Bool("hint", false, "A hint was used")
}
