package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// practiceAnswer is one JSON line read by the practice command.
type practiceAnswer struct {
	Skills  []string `json:"skills"`
	Correct bool     `json:"correct"`
	Hint    bool     `json:"hint"`
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Record a practice session from JSON lines on stdin",
	Long: "Start a session, apply one answer per input line, then print the session summary.\n" +
		`Each line looks like {"skills": ["basic_joins"], "correct": true, "hint": false}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if err := e.tracker.StartSession(ctx); err != nil {
			return err
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			var a practiceAnswer
			if err := json.Unmarshal([]byte(line), &a); err != nil {
				logger.Warn().Err(err).Int("line", lineNo).Msg("skipping malformed answer")
				continue
			}
			before := e.tracker.Badges()
			deltas := e.tracker.RecordAnswer(ctx, a.Skills, a.Correct, a.Hint)
			if !quiet {
				printDeltas(cmd, e.tracker, deltas)
				printEarned(cmd, e.tracker, before)
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Warn().Err(err).Msg("stopped reading answers")
		}

		sum, ok := e.tracker.EndSession(ctx)
		if !ok {
			return fmt.Errorf("session was not active")
		}
		out := cmd.OutOrStdout()
		if !quiet {
			fmt.Fprintln(out)
		}
		printSummary(out, e.tracker.Graph(), sum)
		return nil
	},
}

func init() {
	practiceCmd.Flags().BoolP("quiet", "q", false, "Only print the session summary")
}
