package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashdto "shelfcontrol/internal/modules/dashboard/dto"
	"shelfcontrol/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DashboardPort interface {
	Overview(ctx context.Context) (dashdto.OverviewOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Overview dashdto.OverviewOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type deadlineItem struct {
	row dashdto.RowOutput
}

func (i deadlineItem) Title() string { return i.row.Title }
func (i deadlineItem) Description() string {
	label := theme.Urgency(i.row.Urgency).Render(i.row.UrgencyLabel)
	return fmt.Sprintf("%s  %s  %s", i.row.Format, i.row.PaceDisplay, label)
}
func (i deadlineItem) FilterValue() string { return i.row.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     DashboardPort
	list     list.Model
	overview dashdto.OverviewOutput
	spinner  spinner.Model
	loading  bool
	err      error
	width    int
	height   int
}

func New(port DashboardPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Deadlines"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadOverviewCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case OverviewLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.overview = msg.Overview
			items := make([]list.Item, len(msg.Overview.Rows))
			for i, row := range msg.Overview.Rows {
				items[i] = deadlineItem{row: row}
			}
			cmds = append(cmds, m.list.SetItems(items))
		}

	case tea.KeyMsg:
		if msg.String() == "r" && !m.list.SettingFilter() {
			m.loading = true
			cmds = append(cmds, m.loadOverviewCmd(), m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render(m.spinner.View() + " loading deadlines")
	}
	if m.err != nil {
		return theme.Pane.Render(theme.Overdue.Render("error: " + m.err.Error()))
	}
	left := theme.PaneActive.Render(m.list.View())
	right := theme.Pane.Render(m.detailView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.goalBar())
}

func (m *Model) resize() {
	listWidth := m.width * 2 / 5
	if listWidth < 30 {
		listWidth = 30
	}
	height := m.height - 6
	if height < 5 {
		height = 5
	}
	m.list.SetSize(listWidth, height)
}

func (m Model) detailView() string {
	item, ok := m.list.SelectedItem().(deadlineItem)
	if !ok {
		return theme.Muted.Render("no deadline selected")
	}
	row := item.row
	var b strings.Builder
	b.WriteString(theme.Title.Render(row.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("format:    %s\n", row.Format))
	b.WriteString(fmt.Sprintf("status:    %s\n", row.Status))
	if !row.DueAt.IsZero() {
		b.WriteString(fmt.Sprintf("due:       %s\n", row.DueAt.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("progress:  %.0f / %.0f\n", row.CurrentProgress, row.TotalQuantity))
	if row.Known {
		b.WriteString(fmt.Sprintf("remaining: %s\n", row.RemainingDisplay))
		b.WriteString(fmt.Sprintf("days left: %d\n", row.DaysLeft))
		b.WriteString(fmt.Sprintf("pace:      %s\n", row.PaceDisplay))
	} else {
		b.WriteString("pace:      N/A\n")
	}
	b.WriteString("urgency:   " + theme.Urgency(row.Urgency).Render(row.UrgencyLabel))
	return b.String()
}

func (m Model) goalBar() string {
	goals := fmt.Sprintf("today's goal  reading %s · listening %s   active pace %s",
		m.overview.ReadingGoal.Display,
		m.overview.ListeningGoal.Display,
		m.overview.Active.Display,
	)
	return theme.Muted.Render(goals + "   [r] refresh  [q] quit")
}

func (m Model) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}

// Filtering reports whether the list filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.SettingFilter()
}
