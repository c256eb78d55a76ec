package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/olympus/internal/ui/theme"
)

// DefaultWidth is the report width used when the terminal size is unknown.
const DefaultWidth = 64

// RenderHeader renders the report header bar: app name, title, treasury
// and active-day count.
func RenderHeader(title string, treasury float64, activeDays int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Olympus")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(fmt.Sprintf("◈ %.2f", treasury)) +
		"   " +
		lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("★ %d %s", activeDays, plural(activeDays, "day", "days")))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // border and padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return theme.Header.Width(width).Render(content)
}

// RenderSection renders a titled card around body.
func RenderSection(title, body string, width int) string {
	return theme.Card.Width(width).Render(theme.Title.Render(title) + "\n" + body)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
