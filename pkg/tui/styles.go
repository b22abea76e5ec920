package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for over-budget and errors
	ColorSuccess  = "28"  // Green for success
	ColorPause    = "66"  // Muted teal for pause rows
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	PauseBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorPause))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	OverBudgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDanger))

	FillerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorDim))

	DurationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))
)

// applyAccent recolors the active-element styles from project settings.
func applyAccent(color string) {
	c := lipgloss.Color(color)
	ActiveBorderStyle = ActiveBorderStyle.BorderForeground(c)
	SelectedStyle = SelectedStyle.Foreground(c)
	TitleStyle = TitleStyle.Foreground(c)
}
