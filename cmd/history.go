package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past practice sessions and earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.events()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		sessions, err := events.QuerySessionEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions recorded.")
		} else {
			fmt.Fprintf(out, "%-16s  %9s  %7s  %8s  %s\n", "Ended", "Questions", "Correct", "Duration", "Proficiency")
			fmt.Fprintln(out, strings.Repeat("─", 70))
			for _, s := range sessions {
				fmt.Fprintf(out, "%-16s  %9d  %7d  %7dm  %.1f -> %.1f\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					s.QuestionsAttempted, s.CorrectCount, s.DurationSecs/60,
					s.ProficiencyBefore, s.ProficiencyAfter)
			}
		}

		earned, err := events.BadgeHistory(ctx)
		if err != nil {
			return fmt.Errorf("query badges: %w", err)
		}
		if len(earned) > 0 {
			fmt.Fprintln(out, "\nBadges:")
			for _, b := range earned {
				fmt.Fprintf(out, "  %-16s  %-18s at %.1f%%\n",
					b.Timestamp.Local().Format("2006-01-02 15:04"), b.BadgeName, b.Proficiency)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
}
