package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shelfcontrol/internal/ui/theme"
	dashboardview "shelfcontrol/internal/ui/views/dashboard"
)

type Model struct {
	dashboard dashboardview.Model
	width     int
	height    int
}

func NewModel(port dashboardview.DashboardPort) Model {
	return Model{dashboard: dashboardview.New(port)}
}

func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.dashboard.Filtering() {
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("shelfcontrol")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.dashboard.View())
	return theme.App.Render(body)
}
