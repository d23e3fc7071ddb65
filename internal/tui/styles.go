package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText   = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

var (
	styleItem     = lipgloss.NewStyle().Foreground(colorText)
	styleSelected = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleHelp     = lipgloss.NewStyle().Foreground(colorMuted)
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	styleStatus   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	styleFrame = lipgloss.NewStyle().
			Foreground(colorMuted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted)
)
