package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/screens/dashboard"
	"github.com/abhisek/careerprep/internal/screens/history"
	"github.com/abhisek/careerprep/internal/screens/interview"
	"github.com/abhisek/careerprep/internal/screens/onboarding"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

const tagline = "AI mock interviews tailored to your career"

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "Mock Interview",
			Disabled: env.Quiz == nil,
			Action: func() tea.Cmd {
				if env.Profile.Validate() != nil {
					return router.Push(onboarding.New(env))
				}
				return router.Push(interview.New(env))
			},
		},
		{Label: "Edit Profile", Action: func() tea.Cmd { return router.Push(onboarding.New(env)) }},
		{Label: "Performance", Action: func() tea.Cmd { return router.Push(dashboard.New(env)) }},
		{Label: "History", Action: func() tea.Cmd { return router.Push(history.New(env)) }},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	if env.Quiz == nil {
		items[0].Hint = "(needs an LLM provider)"
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Width(cw).Render("C A R E E R P R E P"),
		theme.Subtitle.Width(cw).Render(tagline),
		components.Card(h.profileSummary(), cw),
	}
	if h.env.LLMErr != nil {
		sections = append(sections, components.Banner("AI features unavailable: "+h.env.LLMErr.Error(), cw))
	}
	sections = append(sections, components.Card(h.menu.View(), cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (h *HomeScreen) profileSummary() string {
	p := h.env.Profile
	if p.Validate() != nil {
		return theme.Warning.Render("No profile yet. Choose Edit Profile to get started.")
	}

	lines := []string{
		theme.Body.Bold(true).Render(p.DisplayIndustry()),
		theme.Hint.Render(fmt.Sprintf("%d years of experience", p.Experience)),
	}
	if len(p.Skills) > 0 {
		lines = append(lines, theme.Hint.Render("Skills: "+strings.Join(p.Skills, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
