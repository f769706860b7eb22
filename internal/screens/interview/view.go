package interview

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/quiz"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.env.Quiz == nil:
		body = s.viewUnavailable(cw)
	case s.busy():
		body = s.spinner.View() + " " + theme.Body.Render(s.pendingNote+"...")
		if s.pendingNote == busyNote(quiz.PhaseGenerating) {
			body += "\n\n" + theme.Hint.Render(s.env.Profile.DisplayIndustry())
		}
	case s.state.Phase == quiz.PhaseInProgress:
		body = s.viewQuestion(cw)
	case s.state.Err != nil:
		body = s.viewFailure(cw)
	default:
		body = theme.Hint.Render("Preparing...")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) viewUnavailable(cw int) string {
	msg := "Mock interviews need an LLM provider."
	if s.env.LLMErr != nil {
		msg += "\n\n" + s.env.LLMErr.Error()
	}
	return components.Banner(msg, cw)
}

func (s *Screen) viewQuestion(cw int) string {
	st := s.state
	progress := components.QuestionTrack{Total: st.Total, Current: st.Index, Answered: st.Answered}

	sections := []string{progress.View(), "", components.Card(s.choice.View(), cw)}

	if st.Revealed {
		verdict := theme.Correct.Render("Correct!")
		if st.Answer != st.Question.CorrectAnswer {
			verdict = theme.Incorrect.Render("Not quite.") + " " +
				theme.Body.Render("Answer: "+st.Question.CorrectAnswer)
		}
		sections = append(sections, components.Card(verdict+"\n"+theme.Hint.Render(st.Explanation), cw))
	}

	if s.errMsg != "" {
		sections = append(sections, theme.Warning.Render(s.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Screen) viewFailure(cw int) string {
	var b strings.Builder
	if s.state.Phase == quiz.PhaseIdle {
		b.WriteString(theme.Incorrect.Render("Could not prepare your questions."))
	} else {
		b.WriteString(theme.Incorrect.Render("Could not save your results."))
		b.WriteString("\n" + theme.Hint.Render("Your answers are kept. Retrying saves the same attempt."))
	}
	b.WriteString("\n\n" + theme.Body.Render(s.state.Err.Error()))
	b.WriteString("\n\n" + theme.Hint.Render("Press r to retry or Esc to go back."))
	return components.Card(b.String(), cw)
}
