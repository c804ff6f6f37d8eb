package viewer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/lightbox/pkg/viewer/modal"
)

var (
	primaryColor = modal.Primary
	mutedColor   = modal.Muted
	activeColor  = lipgloss.Color("42")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)

	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255")).
				Bold(true)
	groupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	statusStyle = lipgloss.NewStyle().Foreground(activeColor)

	backdropStyle = lipgloss.NewStyle().Background(lipgloss.Color("233"))

	mediaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Align(lipgloss.Center, lipgloss.Center)

	navStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	closeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

	thumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))
	thumbActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(activeColor).
				Bold(true)
)
