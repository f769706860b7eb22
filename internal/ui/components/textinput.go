package components

import (
	"strconv"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

// TextInput is a labelled bubbles text field with an inline error line.
type TextInput struct {
	Label string
	Model textinput.Model

	// NumericOnly drops every printable key that is not a digit.
	NumericOnly bool

	err string
}

// NewTextInput returns a blurred field. limit caps the value length when
// positive.
func NewTextInput(label, placeholder string, numericOnly bool, limit int) TextInput {
	m := textinput.New()
	m.Prompt = "› "
	m.Placeholder = placeholder
	if limit > 0 {
		m.CharLimit = limit
	}
	return TextInput{Label: label, Model: m, NumericOnly: numericOnly}
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

func (t *TextInput) Blur() { t.Model.Blur() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && t.NumericOnly && !digitsOnly(k.Text) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// digitsOnly reports whether typed text is empty or all digits. Empty text
// means a control key such as backspace, which must pass through.
func digitsOnly(text string) bool {
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (t TextInput) View() string {
	label := theme.Hint.Italic(false)
	if t.Model.Focused() {
		label = theme.Selected
	}
	out := label.Render(t.Label) + "\n" + t.Model.View()
	if t.err != "" {
		out += "\n" + theme.Incorrect.Bold(false).Render("✗ "+t.err)
	}
	return out
}

func (t TextInput) Value() string { return t.Model.Value() }

func (t *TextInput) SetValue(v string) { t.Model.SetValue(v) }

// NumericValue parses the value as a base-10 integer.
func (t TextInput) NumericValue() (int, error) { return strconv.Atoi(t.Model.Value()) }

// SetError sets the message shown under the field; "" clears it.
func (t *TextInput) SetError(msg string) { t.err = msg }
