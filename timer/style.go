package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/projectascend/ascend/internal/session"
)

type style struct {
	base      lipgloss.Style
	elapsed   lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	ended     lipgloss.Style
	idle      lipgloss.Style
	errorText lipgloss.Style
}

func newStyle(dark bool) style {
	hint := lipgloss.Color("#6C6C6C")
	if dark {
		hint = lipgloss.Color("#9E9E9E")
	}

	badge := lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#1C1C1C"))

	return style{
		base:      lipgloss.NewStyle().Padding(1, 1),
		elapsed:   lipgloss.NewStyle().Bold(true),
		title:     lipgloss.NewStyle().Bold(true),
		hint:      lipgloss.NewStyle().Foreground(hint),
		running:   badge.Background(lipgloss.Color("#B0DB43")),
		paused:    badge.Background(lipgloss.Color("#F5C542")),
		ended:     badge.Background(lipgloss.Color("#12EAEA")),
		idle:      badge.Background(hint),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}

func (s style) phase(p session.Phase) lipgloss.Style {
	switch p {
	case session.Running:
		return s.running
	case session.Paused:
		return s.paused
	case session.Ended:
		return s.ended
	default:
		return s.idle
	}
}
