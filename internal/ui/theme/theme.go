package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — neon terminal, cyan on deep navy
var (
	Primary   = lipgloss.Color("#00f3ff") // Neon Cyan
	Secondary = lipgloss.Color("#00ff9d") // Neon Green
	Accent    = lipgloss.Color("#bd00ff") // Violet
	Success   = lipgloss.Color("#00ff9d") // Neon Green
	Error     = lipgloss.Color("#ff2a6d") // Hot Red
	Warning   = lipgloss.Color("#fee440") // Yellow
	Text      = lipgloss.Color("#e0fbfc") // Pale Cyan
	TextDim   = lipgloss.Color("#5c7a8a") // Steel
	BgDark    = lipgloss.Color("#050a14") // Deep Navy
	BgCard    = lipgloss.Color("#0c1624") // Dark Panel
	Border    = lipgloss.Color("#133b52") // Dim Cyan
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)
