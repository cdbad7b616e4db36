package ui

import "github.com/charmbracelet/lipgloss"

var (
	cyan   = lipgloss.Color("#00F5FF")
	violet = lipgloss.Color("#8A2BE2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	typingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	cursorStyle = lipgloss.NewStyle().Foreground(violet)

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(cyan).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2)
)
