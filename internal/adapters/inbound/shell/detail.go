package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

// invoiceDetail is the read-only overlay for one invoice; payments
// load lazily when it opens.
type invoiceDetail struct {
	invoice        domain.Invoice
	payments       []domain.Payment
	paymentsLoaded bool
}

func (m *Model) openDetail(inv domain.Invoice) tea.Cmd {
	m.detail = &invoiceDetail{invoice: inv}
	m.dialog = dialogDetail
	return m.loadPaymentsCmd(inv.ID)
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	inv := m.detail.invoice
	switch msg.String() {
	case "esc", "q", "enter":
		m.closeDialog()
	case "e":
		return m.openInvoiceDialogEdit(inv)
	case "s":
		m.openStatusPicker(inv)
	case "p":
		return m.openPaymentDialog(inv)
	case "x":
		m.info(fmt.Sprintf("Exporting %s…", invoiceLabel(inv)))
		return m.exportInvoiceCmd(inv.ID)
	}
	return nil
}

func (m *Model) viewDetail() string {
	d := m.detail
	var b strings.Builder
	b.WriteString(tui.RenderInvoiceDetail(d.invoice, m.settings.Currency))
	b.WriteString("\n")
	if !d.paymentsLoaded {
		b.WriteString("  Loading payments…\n")
		return b.String()
	}
	b.WriteString(tui.RenderPayments(d.payments, m.settings.Currency))
	return b.String()
}
