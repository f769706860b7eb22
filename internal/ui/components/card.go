package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

const (
	minContentWidth = 20
	maxContentWidth = 76
)

// ContentWidth is the box width for a frame of the given width. Every box
// on a screen uses it so their edges line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// Card draws content in the standard rounded box, cw columns wide.
func Card(content string, cw int) string {
	return theme.Card.Width(cw - 2).Render(content)
}

// StatCard is a dashboard tile: a dim label over a styled figure.
func StatCard(label, value string, valueStyle lipgloss.Style, width int) string {
	return theme.Card.
		Width(width).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(theme.Hint.Render(label) + "\n" + valueStyle.Render(value))
}

// Banner draws msg in an amber box. Screens use it for degraded modes such
// as a missing LLM provider.
func Banner(msg string, cw int) string {
	return theme.Card.
		BorderForeground(theme.Accent).
		Foreground(theme.Accent).
		Width(cw - 2).
		Padding(0, 1).
		Render(msg)
}
