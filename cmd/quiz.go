package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/quiz"
)

var errQuit = errors.New("interview abandoned")

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a mock interview without the full-screen UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if d.machine == nil {
			return fmt.Errorf("mock interviews need an LLM provider: %w", d.llmErr)
		}
		_, err = runQuiz(cmd.Context(), d.machine, cfg.User, cfg.Profile, cmd.InOrStdin(), cmd.OutOrStdout())
		if errors.Is(err, errQuit) {
			return nil
		}
		return err
	},
}

// runQuiz drives one attempt over line-oriented input. Each question takes
// an option number; the explanation is shown right after answering.
func runQuiz(ctx context.Context, m *quiz.Machine, user string, p profile.Profile, in io.Reader, out io.Writer) (*assessment.Record, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile incomplete (%v); set it with --industry or from the main screen", err)
	}

	r := &prompter{in: bufio.NewScanner(in), out: out}

	fmt.Fprintf(out, "Preparing questions for %s...\n", p.DisplayIndustry())
	if err := m.Start(ctx, user, p); err != nil {
		return nil, err
	}

	for {
		st := m.State()
		if st.Phase != quiz.PhaseInProgress {
			break
		}
		if err := askQuestion(m, st, r); err != nil {
			return nil, err
		}
	}

	for {
		rec, err := m.Finish(ctx)
		if err == nil {
			printRecord(out, rec)
			return rec, nil
		}
		var saveErr *assessment.SaveError
		if !errors.As(err, &saveErr) {
			return nil, err
		}
		fmt.Fprintf(out, "Could not save your results: %v\n", saveErr.Err)
		if ok, _ := r.confirm("Retry? [Y/n] "); !ok {
			return nil, err
		}
	}
}

func askQuestion(m *quiz.Machine, st quiz.State, r *prompter) error {
	q := st.Question
	fmt.Fprintf(r.out, "\nQuestion %d of %d\n%s\n", st.Index+1, st.Total, q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, opt)
	}

	for {
		line, err := r.ask(fmt.Sprintf("Answer [1-%d, q to quit]: ", len(q.Options)))
		if err != nil {
			return err
		}
		if line == "q" {
			return errQuit
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(r.out, "Enter a number between 1 and %d.\n", len(q.Options))
			continue
		}
		if err := m.Answer(q.Options[n-1]); err != nil {
			return err
		}
		break
	}

	explanation, err := m.Reveal()
	if err != nil {
		return err
	}
	if answer := m.State().Answer; answer == q.CorrectAnswer {
		fmt.Fprintln(r.out, "Correct!")
	} else {
		fmt.Fprintf(r.out, "Not quite. Answer: %s\n", q.CorrectAnswer)
	}
	if explanation != "" {
		fmt.Fprintln(r.out, explanation)
	}
	return m.Advance()
}

func printRecord(out io.Writer, rec *assessment.Record) {
	fmt.Fprintf(out, "\nScore: %.1f%% (%d of %d correct)\n", rec.QuizScore, rec.CorrectCount(), len(rec.Questions))
	if rec.HasTip() {
		fmt.Fprintf(out, "Tip: %s\n", rec.ImprovementTip)
	}
	fmt.Fprintf(out, "Saved as %s\n", rec.ID)
}

// prompter reads one trimmed line per question.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}

func (p *prompter) confirm(prompt string) (bool, error) {
	line, err := p.ask(prompt)
	if err != nil {
		return false, err
	}
	return line == "" || line == "y" || line == "yes", nil
}
