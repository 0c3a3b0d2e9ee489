package tui

import "github.com/charmbracelet/lipgloss"

const (
	cardWidth  = 30
	cardHeight = 6
	cardGap    = 1
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	formStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	formFocusedStyle = formStyle.BorderForeground(lipgloss.Color("12"))
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth).
			Height(cardHeight).
			MarginRight(cardGap)
	cardSelectedStyle = cardStyle.BorderForeground(lipgloss.Color("12"))
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	cardActionsStyle  = lipgloss.NewStyle().Faint(true)
)
