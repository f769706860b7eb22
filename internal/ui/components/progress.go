package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

// QuestionTrack shows the position within an attempt, one cell per
// question. Answers are given in order, so the first Answered cells are
// the answered ones.
type QuestionTrack struct {
	Total    int
	Current  int // zero-based
	Answered int
}

func (t QuestionTrack) View() string {
	if t.Total <= 0 {
		return ""
	}

	here := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	done := lipgloss.NewStyle().Foreground(theme.Secondary)
	todo := lipgloss.NewStyle().Foreground(theme.Border)

	cells := make([]string, t.Total)
	for i := range cells {
		switch {
		case i == t.Current:
			cells[i] = here.Render("◆")
		case i < t.Answered:
			cells[i] = done.Render("■")
		default:
			cells[i] = todo.Render("□")
		}
	}

	label := theme.Body.Render(fmt.Sprintf("Question %d of %d", t.Current+1, t.Total))
	return label + "   " + strings.Join(cells, " ")
}
