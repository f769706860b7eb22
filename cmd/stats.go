package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerprep/internal/performance"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show average score and the score trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.AssessmentRepo().ListByUser(cmd.Context(), cfg.User)
		if err != nil {
			return fmt.Errorf("load assessments: %w", err)
		}
		printSummary(cmd.OutOrStdout(), performance.Summarize(recs))
		return nil
	},
}

func printSummary(out io.Writer, sum performance.Summary) {
	if sum.Count() == 0 {
		fmt.Fprintln(out, "No assessments yet. Run `careerprep quiz` to take one.")
		return
	}

	latest := "-"
	if sum.HasLatest {
		latest = fmt.Sprintf("%.1f%%", sum.LatestScore)
	}
	fmt.Fprintf(out, "Assessments:         %d\n", sum.Count())
	fmt.Fprintf(out, "Average score:       %.1f%%\n", sum.AverageScore)
	fmt.Fprintf(out, "Questions practiced: %d\n", sum.TotalQuestions)
	fmt.Fprintf(out, "Latest score:        %s\n", latest)
	fmt.Fprintf(out, "Best score:          %.1f%%\n", sum.Best())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Trend")
	fmt.Fprintln(out, strings.Repeat("─", 40))
	for _, p := range sum.Series {
		bar := strings.Repeat("█", int(p.Score/5))
		fmt.Fprintf(out, "%-7s %5.1f%%  %s\n", p.Label, p.Score, bar)
	}
}
