package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	curveFg   = lipgloss.Color("#38BDF8")
	pointFg   = lipgloss.Color("#F59E0B")
	errorFg   = lipgloss.Color("#EF4444")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	tabStyle     = lipgloss.NewStyle().Foreground(baseDimFg).Padding(0, 1)
	activeTab    = lipgloss.NewStyle().Foreground(accentFg).Bold(true).Underline(true).Padding(0, 1)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	curveStyle   = lipgloss.NewStyle().Foreground(curveFg)
	pointStyle   = lipgloss.NewStyle().Foreground(pointFg).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg).Bold(true)
	polygonStyle = dimStyle
)
