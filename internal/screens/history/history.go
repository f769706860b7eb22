package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/screens/interview"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/layout"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []assessment.Record
	Err     error
}

// HistoryScreen lists past assessments, newest first.
type HistoryScreen struct {
	env      *screen.Env
	records  []assessment.Record
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
	list     viewport.Model
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
		list:     viewport.New(),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	records, userID := s.env.Records, s.env.UserID
	return func() tea.Msg {
		recs, err := records.History(context.Background(), userID)
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return notice(width, theme.Incorrect.Bold(false), "Could not load history: "+s.errMsg)
	case !s.loaded:
		return notice(width, theme.Hint.Italic(false), "Loading history...")
	case len(s.records) == 0:
		return notice(width, theme.Hint, "No assessments yet. Take a mock interview!")
	}

	cw := components.ContentWidth(width)
	var (
		rows          []string
		lines, cursor int
	)
	add := func(r string) {
		rows = append(rows, r)
		lines += lipgloss.Height(r)
	}
	for i, rec := range s.records {
		if i == s.selected {
			cursor = lines
		}
		add(s.row(i, rec))
		if !s.expanded[i] {
			continue
		}
		if rec.HasTip() {
			add("    " + theme.Warning.Render("Tip: ") + theme.Body.Width(cw-10).Render(rec.ImprovementTip))
		}
		add(indent(interview.ReviewLines(rec.Questions, cw-4), "    "))
		add("")
	}

	s.list.SetWidth(cw)
	s.list.SetHeight(max(height-1, 1))
	s.list.SetContent(strings.Join(rows, "\n"))
	s.list.EnsureVisible(cursor, 0, 0)

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.list.View())
}

// row is the one-line summary of rec; the selected row carries a cursor.
func (s *HistoryScreen) row(i int, rec assessment.Record) string {
	cursor, style := "  ", theme.Body
	if i == s.selected {
		cursor, style = "▸ ", theme.Selected
	}
	summary := fmt.Sprintf("%s%s  %-24s  %d/%d correct  ",
		cursor, rec.CreatedAt.Local().Format(assessment.DateLayout),
		category(rec), rec.CorrectCount(), len(rec.Questions))
	return style.Render(summary) + theme.ScoreStyle(rec.QuizScore).Render(fmt.Sprintf("%5.1f%%", rec.QuizScore))
}

func notice(width int, style lipgloss.Style, text string) string {
	return "\n\n" + style.Width(width).Align(lipgloss.Center).Render(text)
}

func category(rec assessment.Record) string {
	if rec.Category == "" {
		return "general"
	}
	return rec.Category
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
