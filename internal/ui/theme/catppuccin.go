package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)

	OnTrack    = lipgloss.NewStyle().Foreground(Green)
	Tight      = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	Overdue    = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Impossible = lipgloss.NewStyle().Foreground(Peach).Bold(true)
)

// Urgency maps an urgency level to its display style.
func Urgency(level string) lipgloss.Style {
	switch level {
	case "good":
		return OnTrack
	case "approaching", "urgent":
		return Tight
	case "overdue":
		return Overdue
	case "impossible":
		return Impossible
	default:
		return Muted
	}
}
