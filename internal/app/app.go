// Package app is the root Bubble Tea model: it owns the screen router and
// draws the shared frame around the active screen.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/screens/home"
	"github.com/abhisek/careerprep/internal/screens/onboarding"
	"github.com/abhisek/careerprep/internal/ui/layout"
)

var (
	quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	backHint = layout.KeyHint{Key: "Esc", Description: "Back"}
)

// Model is the root model.
type Model struct {
	env    *screen.Env
	router *router.Router

	width, height int
}

func newModel(env *screen.Env) Model {
	return Model{env: env, router: router.New(home.New(env))}
}

// Init opens the profile form when no usable profile is configured.
func (m Model) Init() tea.Cmd {
	if m.env.Profile.Validate() != nil {
		return router.Push(onboarding.New(m.env))
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderTooSmall(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

func (m Model) frame() string {
	status := "No profile"
	if m.env.Profile.Validate() == nil {
		status = m.env.Profile.DisplayIndustry()
	}

	header := layout.RenderHeader(m.router.Trail(), status, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	body := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m Model) hints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), quitHint)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{backHint, quitHint}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, quitHint}
}

// Run starts the program and blocks until the user quits.
func Run(env *screen.Env) error {
	_, err := tea.NewProgram(newModel(env)).Run()
	return err
}
