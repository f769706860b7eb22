package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

type picked string

func testMenu() Menu {
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{
			Label:    label,
			Disabled: disabled,
			Action:   func() tea.Cmd { return func() tea.Msg { return picked(label) } },
		}
	}
	return NewMenu([]MenuItem{
		item("Mock Interview", true),
		item("Edit Profile", false),
		item("History", false),
		item("Quit", false),
	})
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("up"))
	assert.Equal(t, 3, m.Selected, "up from the first enabled item wraps past the disabled one")

	m, _ = m.Update(key("down"))
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("j"))
	assert.Equal(t, 2, m.Selected)
}

func TestMenuEnterAndDigits(t *testing.T) {
	m := testMenu()

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, picked("Edit Profile"), cmd())

	m, cmd = m.Update(key("3"))
	require.NotNil(t, cmd)
	assert.Equal(t, picked("History"), cmd())
	assert.Equal(t, 2, m.Selected)

	_, cmd = m.Update(key("1"))
	assert.Nil(t, cmd, "digits never pick a disabled item")
}

func TestMenuAllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}})
	m, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, -1, m.Selected)
}

func TestMenuView(t *testing.T) {
	m := testMenu()
	m.Items[0].Hint = "(needs an LLM provider)"
	view := m.View()

	assert.Contains(t, view, "▸ Edit Profile")
	assert.Contains(t, view, "(needs an LLM provider)")
	assert.NotContains(t, view, "▸ Mock Interview")
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice("Which port does HTTPS use?", []string{"80", "443", "8080"}, "443")
	assert.Equal(t, 1, mc.Cursor)

	mc, _ = mc.Update(key("down"))
	assert.Equal(t, "8080", mc.Current())
	mc, _ = mc.Update(key("down"))
	assert.Equal(t, "8080", mc.Current(), "cursor stops at the last option")

	mc, _ = mc.Update(key("1"))
	assert.Equal(t, "80", mc.Current())
	mc, _ = mc.Update(key("9"))
	assert.Equal(t, "80", mc.Current())

	view := mc.View()
	assert.Contains(t, view, "Which port does HTTPS use?")
	assert.Contains(t, view, "▸   A)  80")
	assert.Contains(t, view, "● B)  443")
}

func TestQuestionTrack(t *testing.T) {
	view := QuestionTrack{Total: 4, Current: 2, Answered: 2}.View()
	assert.Contains(t, view, "Question 3 of 4")
	assert.Equal(t, 2, strings.Count(view, "■"))
	assert.Equal(t, 1, strings.Count(view, "◆"))
	assert.Equal(t, 1, strings.Count(view, "□"))

	assert.Empty(t, QuestionTrack{}.View())
}

func TestTrendChart(t *testing.T) {
	c := TrendChart{
		Points: []TrendPoint{{"Mar 01", 40}, {"Mar 08", 100}, {"Mar 15", 0}},
		Height: 4,
		Width:  60,
	}
	view := c.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "100")
	assert.Contains(t, lines[5], "Mar 01")
	assert.Contains(t, lines[5], "Mar 15")
	assert.NotContains(t, lines[5], "Mar 08")

	assert.Equal(t, 2, barRows(40, 4))
	assert.Equal(t, 1, barRows(1, 4))
	assert.Equal(t, 0, barRows(0, 4))
	assert.Equal(t, 4, barRows(120, 4))
}

func TestTrendChartKeepsLatestPoints(t *testing.T) {
	var pts []TrendPoint
	for i := 0; i < 30; i++ {
		pts = append(pts, TrendPoint{Value: float64(i)})
	}
	c := TrendChart{Points: pts, Width: 25}

	visible := c.VisiblePoints()
	require.Len(t, visible, 5)
	assert.Equal(t, 29.0, visible[4].Value)

	assert.Contains(t, TrendChart{}.View(), "No assessments yet.")
}

func TestTextInputNumericOnly(t *testing.T) {
	ti := NewTextInput("Years of experience", "0", true, 2)
	ti.Focus()

	for _, k := range []string{"1", "x", "2", "3"} {
		ti, _ = ti.Update(key(k))
	}
	assert.Equal(t, "12", ti.Value())
	n, err := ti.NumericValue()
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	ti.SetError("must be between 0 and 50")
	assert.Contains(t, ti.View(), "must be between 0 and 50")
	ti.SetError("")
	assert.NotContains(t, ti.View(), "must be between")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 76, ContentWidth(200))
	assert.Equal(t, 74, ContentWidth(80))
	assert.Equal(t, 20, ContentWidth(10))
}
