package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/model"
	"taskboard/internal/viewstate"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(12)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

func renderPriority(p model.Priority) string {
	if s, ok := priorityStyles[p]; ok {
		return s.Render(string(p))
	}
	return string(p)
}

func renderNotice(n *viewstate.Notice) string {
	if n == nil {
		return ""
	}
	if n.IsError() {
		return errorStyle.Render(n.Message)
	}
	return successStyle.Render(n.Message)
}
