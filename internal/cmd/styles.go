package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"tasktracker/internal/task"
)

var (
	// Status colors
	todoColor       = lipgloss.Color("#9CA3AF") // Gray
	inProgressColor = lipgloss.Color("#F59E0B") // Amber
	doneColor       = lipgloss.Color("#10B981") // Green

	idStyle = lipgloss.NewStyle().
		Bold(true).
		Width(4).
		Align(lipgloss.Right)

	descriptionStyle = lipgloss.NewStyle()

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Faint(true)

	statusBadge = lipgloss.NewStyle().
			Bold(true).
			Width(13)
)

// statusStyle returns the badge style for the given status.
func statusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusInProgress:
		return statusBadge.Foreground(inProgressColor)
	case task.StatusDone:
		return statusBadge.Foreground(doneColor)
	default:
		return statusBadge.Foreground(todoColor)
	}
}
