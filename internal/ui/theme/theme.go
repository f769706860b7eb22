// Package theme holds the colors and text styles shared by every screen.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#818CF8") // indigo
	Secondary = lipgloss.Color("#2DD4BF") // teal
	Accent    = lipgloss.Color("#FBBF24") // amber
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#FB7185")
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#475569")
)

var (
	Title     = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle  = fg(TextDim).Align(lipgloss.Center)
	Body      = fg(Text)
	Hint      = fg(TextDim).Italic(true)
	Selected  = fg(Primary).Bold(true)
	Correct   = fg(Success).Bold(true)
	Incorrect = fg(Error).Bold(true)
	Warning   = fg(Accent)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// ScoreStyle colors a 0-100 score: green from 80, amber from 50, rose below.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return Correct
	case score >= 50:
		return fg(Accent).Bold(true)
	default:
		return Incorrect
	}
}

// Mark renders the check or cross used in answer reviews.
func Mark(correct bool) string {
	if correct {
		return Correct.Render("✓")
	}
	return Incorrect.Render("✗")
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
