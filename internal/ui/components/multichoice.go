package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

const optionLabels = "ABCDEF"

// MultiChoice is a multiple-choice selector. It only tracks the cursor;
// the chosen and correct answers are supplied by the owner so that the
// quiz machine stays the single source of truth.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int

	// Chosen is the recorded answer, "" when none.
	Chosen string
	// Correct is highlighted once Revealed is set.
	Correct  string
	Revealed bool
}

// NewMultiChoice creates a selector with the cursor on chosen, if present.
func NewMultiChoice(question string, options []string, chosen string) MultiChoice {
	m := MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   chosen,
	}
	for i, o := range options {
		if o == chosen {
			m.Cursor = i
		}
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with arrows, j/k or the option number.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Cursor = i
			}
		}
	}

	return m, nil
}

// Current returns the option under the cursor.
func (m MultiChoice) Current() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor]
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if opt == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, optionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && opt == m.Correct:
			style = theme.Correct
		case m.Revealed && opt == m.Chosen:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		case opt == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		default:
			style = theme.Body
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

func optionLabel(i int) string {
	if i < len(optionLabels) {
		return optionLabels[i : i+1]
	}
	return fmt.Sprint(i + 1)
}
