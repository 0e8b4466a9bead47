package shell

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

func (m *Model) updateDashboardView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "r":
		return tea.Batch(m.loadStatsCmd(), m.loadSettingsCmd())
	case "o":
		return m.openSettingsDialog()
	case "tab":
		m.view = viewCustomers
	case "1":
		m.view = viewDashboard
	case "2":
		m.view = viewCustomers
	case "3":
		m.view = viewInvoices
	}
	return nil
}

func (m *Model) viewDashboard() string {
	var b strings.Builder
	if m.loading.stats {
		b.WriteString("  Loading…\n")
		return b.String()
	}
	b.WriteString(tui.RenderStats(m.stats, m.settings.Currency))
	b.WriteString("\n")
	b.WriteString(tui.RenderRecentInvoices(m.recent, m.settings.Currency))
	return b.String()
}
