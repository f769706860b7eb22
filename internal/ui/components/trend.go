package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerprep/internal/ui/theme"
)

// TrendPoint is one bar in a TrendChart.
type TrendPoint struct {
	Label string
	Value float64 // 0-100
}

// TrendChart renders scores as vertical bars on a fixed 0-100 axis.
type TrendChart struct {
	Points []TrendPoint
	Height int // rows of bars, excluding axis labels
	Width  int
}

const barWidth = 3

// VisiblePoints returns the most recent points that fit in Width.
func (c TrendChart) VisiblePoints() []TrendPoint {
	// Axis gutter is "100 │".
	room := (c.Width - 5) / (barWidth + 1)
	if room < 1 {
		room = 1
	}
	if len(c.Points) <= room {
		return c.Points
	}
	return c.Points[len(c.Points)-room:]
}

// View renders the chart, or a hint when there is nothing to plot.
func (c TrendChart) View() string {
	points := c.VisiblePoints()
	if len(points) == 0 {
		return theme.Hint.Render("No assessments yet.")
	}

	height := c.Height
	if height < 2 {
		height = 2
	}

	axis := lipgloss.NewStyle().Foreground(theme.TextDim)
	var rows []string
	for r := height; r >= 1; r-- {
		var label string
		switch r {
		case height:
			label = "100"
		case (height + 1) / 2:
			label = " 50"
		default:
			label = "   "
		}
		var b strings.Builder
		b.WriteString(axis.Render(label + " │"))
		for _, p := range points {
			b.WriteString(" ")
			if barRows(p.Value, height) >= r {
				b.WriteString(theme.ScoreStyle(p.Value).Render(strings.Repeat("█", barWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", barWidth))
			}
		}
		rows = append(rows, b.String())
	}

	rows = append(rows, axis.Render("  0 └"+strings.Repeat("─", len(points)*(barWidth+1))))

	// Only the first and last dates fit under narrow bars.
	span := len(points) * (barWidth + 1)
	first, last := points[0].Label, points[len(points)-1].Label
	footer := first
	if len(points) > 1 {
		gap := span - lipgloss.Width(first) - lipgloss.Width(last)
		if gap < 1 {
			gap = 1
		}
		footer = first + strings.Repeat(" ", gap) + last
	}
	rows = append(rows, axis.Render("      "+footer))

	return strings.Join(rows, "\n")
}

// barRows maps a 0-100 value onto 0..height rows. Any non-zero score gets
// at least one row so it is distinguishable from zero.
func barRows(v float64, height int) int {
	if v <= 0 {
		return 0
	}
	if v > 100 {
		v = 100
	}
	n := int(v/100*float64(height) + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
