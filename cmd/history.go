package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerprep/internal/assessment"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List past assessments, or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		b := assessment.NewBuilder(s.AssessmentRepo(), logger)
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			rec, err := b.Lookup(cmd.Context(), args[0])
			if errors.Is(err, assessment.ErrNotFound) {
				return fmt.Errorf("assessment %s not found", args[0])
			}
			if err != nil {
				return err
			}
			printDetail(out, rec)
			return nil
		}

		recs, err := b.History(cmd.Context(), cfg.User)
		if err != nil {
			return err
		}
		printHistory(out, recs)
		return nil
	},
}

func printHistory(out io.Writer, recs []assessment.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(out, "No assessments yet.")
		return
	}
	fmt.Fprintf(out, "%-36s  %-22s  %-24s  %7s  %6s\n", "ID", "Date", "Category", "Correct", "Score")
	fmt.Fprintln(out, strings.Repeat("─", 104))
	for _, r := range recs {
		fmt.Fprintf(out, "%-36s  %-22s  %-24s  %7s  %5.1f%%\n",
			r.ID,
			r.CreatedAt.Local().Format(assessment.DateLayout),
			truncate(r.Category, 24),
			fmt.Sprintf("%d/%d", r.CorrectCount(), len(r.Questions)),
			r.QuizScore,
		)
	}
}

func printDetail(out io.Writer, r *assessment.Record) {
	fmt.Fprintf(out, "ID:        %s\n", r.ID)
	fmt.Fprintf(out, "Date:      %s\n", r.CreatedAt.Local().Format(assessment.DateLayout))
	if r.Category != "" {
		fmt.Fprintf(out, "Category:  %s\n", r.Category)
	}
	fmt.Fprintf(out, "Score:     %.1f%% (%d of %d correct)\n", r.QuizScore, r.CorrectCount(), len(r.Questions))
	if r.HasTip() {
		fmt.Fprintf(out, "Tip:       %s\n", r.ImprovementTip)
	}

	for i, q := range r.Questions {
		mark := "✓"
		if !q.IsCorrect {
			mark = "✗"
		}
		fmt.Fprintf(out, "\n%s %d. %s\n", mark, i+1, q.Question)
		answer := q.UserAnswer
		if answer == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(out, "   Your answer: %s\n", answer)
		if !q.IsCorrect {
			fmt.Fprintf(out, "   Correct:     %s\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Fprintf(out, "   %s\n", q.Explanation)
		}
	}
}
