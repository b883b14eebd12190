package tui

import "github.com/charmbracelet/lipgloss"

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	choiceStyle            = lipgloss.NewStyle().Padding(0, 2)
	destructiveChoiceStyle = choiceStyle.Foreground(lipgloss.Color("9"))

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

func barStyle(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func panelString(inner string) string {
	return barStyle(lipgloss.Color("8")).Render(inner)
}
