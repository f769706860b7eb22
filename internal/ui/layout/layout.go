// Package layout renders the frame around every screen: a header with the
// navigation trail and profile, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3
)

const (
	brand          = "CareerPrep"
	trailSeparator = " › "
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for a screen body.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderTooSmall asks the user to enlarge the terminal.
func RenderTooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Resize the terminal to at least %d x %d.\n\nCurrent size: %d x %d",
			MinWidth, MinHeight, width, height))
}

// RenderHeader draws the brand, the trail of open screens and status.
// Older trail entries are dimmed and dropped from the left when the trail
// does not fit.
func RenderHeader(trail []string, status string, width int) string {
	inner := max(width-4, 0)

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(status)
	room := inner - lipgloss.Width(left) - lipgloss.Width(right) - 4

	center := renderTrail(trail, room)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	leftGap := max(gap/2, 1)
	rightGap := max(gap-leftGap, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar().Width(width).Render(content)
}

func renderTrail(trail []string, room int) string {
	for len(trail) > 1 && lipgloss.Width(strings.Join(trail, trailSeparator)) > room {
		trail = trail[1:]
	}
	if len(trail) == 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	current := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	parts := make([]string, len(trail))
	for i, t := range trail {
		if i == len(trail)-1 {
			parts[i] = current.Render(t)
		} else {
			parts[i] = dim.Render(t)
		}
	}
	return strings.Join(parts, dim.Render(trailSeparator))
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar().Width(width).Render(" " + strings.Join(parts, "  ·  "))
}

// RenderFrame stacks header, body and footer, padding the body so the
// frame fills height.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
