package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan - cursor row
	colorAccent  = lipgloss.Color("#FFD700") // Gold - pins and selection
	colorDanger  = lipgloss.Color("#FF5252") // Red - critical issues
	colorWarn    = lipgloss.Color("#FFA726") // Orange - warnings
	colorMuted   = lipgloss.Color("#636363") // Gray - de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white - primary text
	colorSurface = lipgloss.Color("#1E1E2E") // Dark surface - header bg
)

// Selection indicator prepended to the cursor row.
const cursorIndicator = "▎"

// Pin marker shown next to pinned packs.
const pinMarker = "⚲"

var (
	styleHeader = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleCursorRow = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleCritical = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarn)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
