package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: bronze and laurel on a dark Aegean night
var (
	Primary   = lipgloss.Color("#EAB308") // Olympian Gold
	Secondary = lipgloss.Color("#65A30D") // Laurel
	Accent    = lipgloss.Color("#0EA5E9") // Aegean Blue
	Bronze    = lipgloss.Color("#B45309") // Bronze
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // Marble
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(16)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// Messages
var (
	Confirm = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Badges
var (
	Monster = lipgloss.NewStyle().
		Foreground(Bronze).
		Bold(true)

	Gilded = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Laurel = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Waypoint = lipgloss.NewStyle().
			Foreground(Accent)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
