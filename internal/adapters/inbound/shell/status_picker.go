package shell

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

// statusPicker chooses the new status for one invoice; applying it
// issues the narrow status write instead of a full update.
type statusPicker struct {
	invoice domain.Invoice
	cursor  int
}

func (m *Model) openStatusPicker(inv domain.Invoice) {
	picker := &statusPicker{invoice: inv}
	for i, s := range domain.AllInvoiceStatuses {
		if s == inv.Status {
			picker.cursor = i
			break
		}
	}
	m.statusPicker = picker
	m.dialog = dialogStatus
}

func (m *Model) updateStatusPicker(msg tea.KeyMsg) tea.Cmd {
	p := m.statusPicker
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(domain.AllInvoiceStatuses)-1 {
			p.cursor++
		}
	case "enter":
		return m.updateStatusCmd(p.invoice.ID, domain.AllInvoiceStatuses[p.cursor])
	case "esc", "q":
		m.closeDialog()
	}
	return nil
}

func (m *Model) viewStatusPicker() string {
	p := m.statusPicker
	var b strings.Builder
	b.WriteString("  " + tui.RenderDialogTitle("Set status · "+invoiceLabel(p.invoice)) + "\n\n")
	for i, s := range domain.AllInvoiceStatuses {
		marker := "  "
		if i == p.cursor {
			marker = "▸ "
		}
		current := s == p.invoice.Status
		b.WriteString("  " + tui.RenderStatusOption(marker, s, i == p.cursor, current) + "\n")
	}
	return b.String()
}
