package tui

import "github.com/charmbracelet/lipgloss"

// Little Lemon palette.
var (
	green  = lipgloss.Color("#495E57")
	yellow = lipgloss.Color("#F4CE14")
	ink    = lipgloss.Color("#333333")
	gray   = lipgloss.Color("8")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(yellow)
	badgeStyle   = lipgloss.NewStyle().Foreground(ink).Background(yellow).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(green)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ink).Background(yellow).Padding(0, 1)

	chipOn      = lipgloss.NewStyle().Foreground(ink).Background(yellow).Padding(0, 1)
	chipOff     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3A474E")).Padding(0, 1)
	chipCursor  = lipgloss.NewStyle().Underline(true)
	focusMarker = lipgloss.NewStyle().Foreground(yellow).Bold(true)
)

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(gray).
		Padding(0, 1)
	return border.Render(inner)
}
