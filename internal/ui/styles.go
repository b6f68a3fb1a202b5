package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/weatherlookup/internal/display"
)

var (
	colorPrimary = lipgloss.Color("#A855F7")
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorMuted   = lipgloss.Color("#6C757D")
	colorBorder  = lipgloss.Color("#60A5FA")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 0, 1, 0)

	tempStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)
)

// themeBorder tints the current-conditions box by condition, like the
// card backgrounds on the web page.
var themeBorder = map[display.Theme]lipgloss.Color{
	display.ThemeRain:  lipgloss.Color("#2563EB"),
	display.ThemeCloud: lipgloss.Color("#9CA3AF"),
	display.ThemeSnow:  lipgloss.Color("#BFDBFE"),
	display.ThemeSun:   lipgloss.Color("#F97316"),
}
