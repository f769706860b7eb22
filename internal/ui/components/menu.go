package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

// MenuItem is one menu entry. Disabled items are shown but never selected.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. The cursor wraps around and skips
// disabled items; digits jump straight to an item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) && !m.Items[n-1].Disabled {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

// move steps the cursor by delta to the next enabled item, wrapping. The
// cursor stays put when every item is disabled.
func (m *Menu) move(delta int) {
	n := len(m.Items)
	for i, at := 0, m.Selected; i < n; i++ {
		at = (at + delta + n) % n
		if !m.Items[at].Disabled {
			m.Selected = at
			return
		}
	}
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	item := m.Items[m.Selected]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		prefix := "    "
		style := theme.Body
		switch {
		case item.Disabled:
			style = theme.Hint.Italic(false)
		case i == m.Selected:
			prefix, style = "  ▸ ", theme.Selected
		}
		line := style.Render(prefix + item.Label)
		if item.Hint != "" {
			line += "  " + theme.Hint.Render(item.Hint)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
