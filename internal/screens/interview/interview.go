// Package interview is the mock-interview screen. It renders the quiz
// machine's state and turns key presses into machine intents.
package interview

import (
	"context"
	"errors"
	"strconv"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/quiz"
	"github.com/abhisek/careerprep/internal/router"
	"github.com/abhisek/careerprep/internal/screen"
	"github.com/abhisek/careerprep/internal/ui/components"
	"github.com/abhisek/careerprep/internal/ui/layout"
	"github.com/abhisek/careerprep/internal/ui/theme"
)

// Screen runs one attempt on the shared quiz machine.
type Screen struct {
	env     *screen.Env
	spinner spinner.Model
	state   quiz.State
	choice  components.MultiChoice

	// choiceFor identifies the question choice was built for.
	choiceFor string
	errMsg    string

	// pending is set from dispatching a machine call until its result
	// message arrives. The machine may not report busy yet in between.
	pending     bool
	pendingNote string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the interview screen.
func New(env *screen.Env) *Screen {
	return &Screen{
		env: env,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

// Init starts a fresh attempt, or resumes one left running when the
// screen was last closed.
func (s *Screen) Init() tea.Cmd {
	if s.env.Quiz == nil {
		return nil
	}
	s.refresh()

	switch {
	case s.state.Busy:
		s.pendingNote = busyNote(s.state.Phase)
		return s.spinner.Tick
	case s.state.Phase == quiz.PhaseIdle, s.state.Phase == quiz.PhaseFinished:
		return s.start()
	case s.state.Phase == quiz.PhaseCompleted && s.state.Err == nil:
		return s.finish()
	}
	return nil
}

func (s *Screen) Title() string {
	return "Mock Interview"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.busy():
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.state.Phase == quiz.PhaseInProgress:
		hints := []layout.KeyHint{
			{Key: "↑↓/1-6", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		if s.state.Answer != "" {
			hints = append(hints,
				layout.KeyHint{Key: "e", Description: "Explain"},
				layout.KeyHint{Key: "n", Description: s.nextLabel()},
			)
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case s.state.Err != nil:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) nextLabel() string {
	if s.state.IsLast() {
		return "Finish"
	}
	return "Next"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.env.Quiz == nil {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
			return s, router.Back()
		}
		return s, nil
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		s.refresh()
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case startedMsg:
		s.pending = false
		s.refresh()
		s.errMsg = ""
		if msg.Err != nil && !isGenerationError(msg.Err) {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case finishedMsg:
		s.pending = false
		s.refresh()
		if msg.Err != nil {
			return s, nil
		}
		return s, router.Replace(NewResults(s.env, msg.Record))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return s, router.Back()
	}

	s.refresh()
	if s.busy() {
		return s, nil
	}

	switch s.state.Phase {
	case quiz.PhaseInProgress:
		return s, s.handleQuestionKey(key, msg)
	case quiz.PhaseIdle:
		if key == "r" {
			return s, s.start()
		}
	case quiz.PhaseCompleted:
		if key == "r" {
			return s, s.finish()
		}
	}
	return s, nil
}

func (s *Screen) handleQuestionKey(key string, msg tea.KeyMsg) tea.Cmd {
	m := s.env.Quiz
	s.errMsg = ""

	switch key {
	case "enter", "space", " ":
		choice := s.choice.Current()
		if s.state.Answer != "" && choice == s.state.Answer {
			return s.advance()
		}
		s.setErr(m.Answer(choice))
	case "e":
		_, err := m.Reveal()
		s.setErr(err)
	case "n", "right":
		return s.advance()
	default:
		s.choice, _ = s.choice.Update(msg)
		return nil
	}
	s.refresh()
	return nil
}

func (s *Screen) advance() tea.Cmd {
	err := s.env.Quiz.Advance()
	s.setErr(err)
	s.refresh()
	if err == nil && s.state.Phase == quiz.PhaseCompleted {
		return s.finish()
	}
	return nil
}

func (s *Screen) start() tea.Cmd {
	m, env := s.env.Quiz, s.env
	s.errMsg = ""
	run := func() tea.Msg {
		return startedMsg{Err: m.Start(context.Background(), env.UserID, env.Profile)}
	}
	return tea.Batch(run, s.dispatch("Preparing your interview questions"))
}

func (s *Screen) finish() tea.Cmd {
	m := s.env.Quiz
	s.errMsg = ""
	run := func() tea.Msg {
		rec, err := m.Finish(context.Background())
		return finishedMsg{Record: rec, Err: err}
	}
	return tea.Batch(run, s.dispatch("Saving your results"))
}

// dispatch marks a machine call in flight and starts the spinner.
func (s *Screen) dispatch(note string) tea.Cmd {
	s.pending = true
	s.pendingNote = note
	return s.spinner.Tick
}

func (s *Screen) busy() bool {
	return s.pending || s.state.Busy
}

func (s *Screen) setErr(err error) {
	if err == nil {
		return
	}
	var v *quiz.ValidationError
	if errors.As(err, &v) {
		s.errMsg = v.Reason
		return
	}
	s.errMsg = err.Error()
}

// refresh pulls a fresh snapshot and rebuilds the option list when the
// current question changes.
func (s *Screen) refresh() {
	s.state = s.env.Quiz.State()
	q := s.state.Question
	if q == nil {
		s.choiceFor = ""
		return
	}

	key := s.state.AttemptID + "/" + strconv.Itoa(s.state.Index)
	if key != s.choiceFor {
		s.choice = components.NewMultiChoice(q.Prompt, q.Options, s.state.Answer)
		s.choiceFor = key
	}
	s.choice.Chosen = s.state.Answer
	s.choice.Correct = q.CorrectAnswer
	s.choice.Revealed = s.state.Revealed
}

func isGenerationError(err error) bool {
	var g *quiz.GenerationError
	return errors.As(err, &g)
}

func busyNote(p quiz.Phase) string {
	if p == quiz.PhaseGenerating {
		return "Preparing your interview questions"
	}
	return "Saving your results"
}
