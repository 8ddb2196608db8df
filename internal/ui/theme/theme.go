package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, calm office blues with warm highlights
var (
	Primary   = lipgloss.Color("#0F62FE") // Blue
	Secondary = lipgloss.Color("#08BDBA") // Teal
	Accent    = lipgloss.Color("#F1C21B") // Yellow
	Success   = lipgloss.Color("#24A148") // Green
	Error     = lipgloss.Color("#FA4D56") // Red
	Text      = lipgloss.Color("#F4F4F4") // Off-white
	TextDim   = lipgloss.Color("#A8A8A8") // Gray
	BgDark    = lipgloss.Color("#161616") // Near black
	BgCard    = lipgloss.Color("#262626") // Charcoal
	Border    = lipgloss.Color("#393939") // Gray 80
)

// ChartPalette colors chart segments in order.
var ChartPalette = []color.Color{
	lipgloss.Color("#0F62FE"),
	lipgloss.Color("#08BDBA"),
	lipgloss.Color("#A56EFF"),
	lipgloss.Color("#FF7EB6"),
	lipgloss.Color("#F1C21B"),
}

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

	SectionTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Notice = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Foreground(Text).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Dashboard
var (
	GaugeCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2).
			Width(26)

	GaugeValue = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	DeltaUp = lipgloss.NewStyle().
		Foreground(Success)

	DeltaDown = lipgloss.NewStyle().
			Foreground(Error)
)
