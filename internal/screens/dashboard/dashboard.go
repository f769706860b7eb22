// Package dashboard shows performance statistics and the score trend.
package dashboard

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/performance"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/layout"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

type summaryLoadedMsg struct {
	Summary performance.Summary
	Err     error
}

// DashboardScreen renders a performance.Summary of the user's history.
type DashboardScreen struct {
	env     *screen.Env
	summary performance.Summary
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(env *screen.Env) *DashboardScreen {
	return &DashboardScreen{env: env}
}

func (s *DashboardScreen) Init() tea.Cmd {
	records, userID := s.env.Records, s.env.UserID
	return func() tea.Msg {
		recs, err := records.History(context.Background(), userID)
		if err != nil {
			return summaryLoadedMsg{Err: err}
		}
		return summaryLoadedMsg{Summary: performance.Summarize(recs)}
	}
}

func (s *DashboardScreen) Title() string {
	return "Performance"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.loaded = true
		s.errMsg = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summary = msg.Summary
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "r":
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading performance...")
	}

	cw := components.ContentWidth(width)
	sum := s.summary

	latest := "-"
	latestStyle := theme.Hint
	if sum.HasLatest {
		latest = fmt.Sprintf("%.0f%%", sum.LatestScore)
		latestStyle = theme.ScoreStyle(sum.LatestScore)
	}

	cardWidth := (cw - 4) / 3
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard("Average Score", fmt.Sprintf("%.1f%%", sum.AverageScore), theme.ScoreStyle(sum.AverageScore), cardWidth),
		"  ",
		components.StatCard("Questions Practiced", fmt.Sprint(sum.TotalQuestions), theme.Body.Bold(true), cardWidth),
		"  ",
		components.StatCard("Latest Score", latest, latestStyle, cardWidth),
	)

	chartHeight := height - lipgloss.Height(cards) - 8
	if chartHeight > 10 {
		chartHeight = 10
	}
	points := make([]components.TrendPoint, len(sum.Series))
	for i, p := range sum.Series {
		points[i] = components.TrendPoint{Label: p.Label, Value: p.Score}
	}
	chart := components.TrendChart{Points: points, Height: chartHeight, Width: cw - 6}

	caption := fmt.Sprintf("Score trend, %d assessments", sum.Count())
	if sum.Count() > 0 {
		caption += fmt.Sprintf(" (best %.0f%%)", sum.Best())
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		components.Card(theme.Hint.Render(caption)+"\n\n"+chart.View(), cw),
	)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
