// Package onboarding collects or edits the candidate profile.
package onboarding

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/layout"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

const (
	fieldIndustry = iota
	fieldSubIndustry
	fieldExperience
	fieldSkills
	fieldBio
	fieldCount
)

// savedMsg reports the outcome of persisting the profile.
type savedMsg struct {
	Err error
}

// OnboardingScreen is a form over profile.Profile.
type OnboardingScreen struct {
	env    *screen.Env
	inputs []components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the form prefilled from env.Profile.
func New(env *screen.Env) *OnboardingScreen {
	inputs := make([]components.TextInput, fieldCount)
	inputs[fieldIndustry] = components.NewTextInput("Industry", "e.g. Technology", false, 60)
	inputs[fieldSubIndustry] = components.NewTextInput("Specialization", "e.g. Backend Development", false, 60)
	inputs[fieldExperience] = components.NewTextInput("Years of experience", "0", true, 2)
	inputs[fieldSkills] = components.NewTextInput("Skills (comma separated)", "e.g. Go, SQL, Kubernetes", false, 200)
	inputs[fieldBio] = components.NewTextInput("Short bio", "Optional", false, profile.MaxBioLength)

	p := env.Profile
	inputs[fieldIndustry].SetValue(p.Industry)
	inputs[fieldSubIndustry].SetValue(p.SubIndustry)
	if p.Experience > 0 {
		inputs[fieldExperience].SetValue(strconv.Itoa(p.Experience))
	}
	inputs[fieldSkills].SetValue(strings.Join(p.Skills, ", "))
	inputs[fieldBio].SetValue(p.Bio)

	return &OnboardingScreen{env: env, inputs: inputs}
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *OnboardingScreen) Title() string {
	return "Profile"
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not save profile: " + msg.Err.Error()
			return s, nil
		}
		return s, router.Back()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			if s.focus < fieldCount-1 {
				return s, s.moveFocus(1)
			}
			return s, s.save()
		case "ctrl+s":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *OnboardingScreen) moveFocus(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.inputs[s.focus].Focus()
}

// Profile builds a profile from the current field values.
func (s *OnboardingScreen) Profile() (profile.Profile, error) {
	p := profile.Profile{
		Industry:    strings.TrimSpace(s.inputs[fieldIndustry].Value()),
		SubIndustry: strings.TrimSpace(s.inputs[fieldSubIndustry].Value()),
		Skills:      profile.ParseSkills(s.inputs[fieldSkills].Value()),
		Bio:         strings.TrimSpace(s.inputs[fieldBio].Value()),
	}
	if v := strings.TrimSpace(s.inputs[fieldExperience].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("experience must be a whole number of years")
		}
		p.Experience = n
	}
	return p, p.Validate()
}

func (s *OnboardingScreen) save() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].SetError("")
	}
	s.errMsg = ""

	p, err := s.Profile()
	if err != nil {
		f := invalidField(p)
		s.inputs[f].SetError(err.Error())
		s.inputs[s.focus].Blur()
		s.focus = f
		return s.inputs[f].Focus()
	}

	s.env.Profile = p
	persist := s.env.SaveProfile
	return func() tea.Msg {
		if persist == nil {
			return savedMsg{}
		}
		return savedMsg{Err: persist(p)}
	}
}

// invalidField picks the field to blame for a failed Validate.
func invalidField(p profile.Profile) int {
	switch {
	case p.Industry == "":
		return fieldIndustry
	case len(p.Bio) > profile.MaxBioLength:
		return fieldBio
	}
	return fieldExperience
}

func (s *OnboardingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render("Tell us about your career"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw - 6).Render("Questions are tailored to your industry and experience."))
	b.WriteString("\n\n")

	for i, in := range s.inputs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(in.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}
