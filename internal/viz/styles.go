package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(36)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(2)
)

func phaseStyle(t Theme) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"running":  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		"complete": lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		"paused":   lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
	}
}
