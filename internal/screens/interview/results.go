package interview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/layout"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

// ResultsScreen shows a saved assessment right after an attempt.
type ResultsScreen struct {
	env    *screen.Env
	record *assessment.Record
	review viewport.Model
	width  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen for rec.
func NewResults(env *screen.Env, rec *assessment.Record) *ResultsScreen {
	return &ResultsScreen{
		env:    env,
		record: rec,
		review: viewport.New(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "n", Description: "New Interview"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Home()
		case "n":
			// The interview screen starts a fresh attempt from PhaseFinished.
			return s, router.Replace(New(s.env))
		}
	}

	var cmd tea.Cmd
	s.review, cmd = s.review.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	rec := s.record

	score := theme.ScoreStyle(rec.QuizScore).Render(fmt.Sprintf("%.0f%%", rec.QuizScore))
	header := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Interview complete"),
		"",
		score,
		theme.Subtitle.Render(fmt.Sprintf("%d of %d correct", rec.CorrectCount(), len(rec.Questions))),
	)

	sections := []string{lipgloss.PlaceHorizontal(cw, lipgloss.Center, header), ""}
	if rec.HasTip() {
		tip := theme.Warning.Bold(true).Render("Improvement tip") + "\n" +
			theme.Body.Width(cw-6).Render(rec.ImprovementTip)
		sections = append(sections, components.Card(tip, cw))
	}
	top := lipgloss.JoinVertical(lipgloss.Left, sections...)

	reviewHeight := height - lipgloss.Height(top) - 2
	if reviewHeight < 3 {
		reviewHeight = 3
	}
	if s.width != cw {
		s.review.SetContent(ReviewLines(rec.Questions, cw))
		s.width = cw
	}
	s.review.SetWidth(cw)
	s.review.SetHeight(reviewHeight)

	body := lipgloss.JoinVertical(lipgloss.Left, top, "", s.review.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// ReviewLines renders every question with the candidate's answer and the
// correct one. It is shared with the history screen.
func ReviewLines(qs []assessment.QuestionResult, width int) string {
	wrap := lipgloss.NewStyle().Width(width - 8)
	var b strings.Builder
	for i, q := range qs {
		b.WriteString(fmt.Sprintf("%s %s\n", theme.Mark(q.IsCorrect), theme.Body.Bold(true).Render(fmt.Sprintf("%d. ", i+1))+wrap.Render(q.Question)))

		answer := q.UserAnswer
		if answer == "" {
			answer = "(no answer)"
		}
		b.WriteString("    " + theme.Hint.Render("Your answer: ") + theme.Body.Render(answer) + "\n")
		if !q.IsCorrect {
			b.WriteString("    " + theme.Hint.Render("Correct: ") + theme.Correct.Render(q.Answer) + "\n")
		}
		if q.Explanation != "" {
			b.WriteString("    " + wrap.Inherit(theme.Hint).Render(q.Explanation) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
