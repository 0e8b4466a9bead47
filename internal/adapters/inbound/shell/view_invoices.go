package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

func (m *Model) updateInvoicesView(msg tea.KeyMsg) tea.Cmd {
	if m.filterFocused {
		return m.updateInvoiceFilter(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		m.filterFocused = true
		return m.invoiceFilter.Focus()
	case "r":
		return tea.Batch(m.loadInvoicesCmd(), m.loadStatsCmd())
	case "up", "k":
		if m.invoiceCursor > 0 {
			m.invoiceCursor--
		}
	case "down", "j":
		if m.invoiceCursor < len(m.visibleInvoices())-1 {
			m.invoiceCursor++
		}
	case "n":
		return m.openInvoiceDialogNew()
	case "enter":
		if inv, ok := m.selectedInvoice(); ok {
			return m.openDetail(inv)
		}
	case "e":
		if inv, ok := m.selectedInvoice(); ok {
			return m.openInvoiceDialogEdit(inv)
		}
	case "s":
		if inv, ok := m.selectedInvoice(); ok {
			m.openStatusPicker(inv)
		}
	case "p":
		if inv, ok := m.selectedInvoice(); ok {
			return m.openPaymentDialog(inv)
		}
	case "x":
		if inv, ok := m.selectedInvoice(); ok {
			m.info(fmt.Sprintf("Exporting %s…", invoiceLabel(inv)))
			return m.exportInvoiceCmd(inv.ID)
		}
	case "d":
		if inv, ok := m.selectedInvoice(); ok {
			m.openConfirm(confirmPrompt{
				question: fmt.Sprintf("Delete invoice %s?", invoiceLabel(inv)),
				action:   m.deleteInvoiceCmd(inv.ID, invoiceLabel(inv)),
			})
		}
	case "tab":
		m.view = viewDashboard
	case "1":
		m.view = viewDashboard
	case "2":
		m.view = viewCustomers
	case "3":
		m.view = viewInvoices
	}
	return nil
}

func (m *Model) updateInvoiceFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.invoiceFilter.SetValue("")
		}
		m.filterFocused = false
		m.invoiceFilter.Blur()
		m.clampCursors()
		return nil
	case tea.KeyUp, tea.KeyDown:
		m.filterFocused = false
		m.invoiceFilter.Blur()
		return m.updateInvoicesView(msg)
	}
	var cmd tea.Cmd
	m.invoiceFilter, cmd = m.invoiceFilter.Update(msg)
	m.clampCursors()
	return cmd
}

func (m *Model) viewInvoices() string {
	var b strings.Builder
	visible := m.visibleInvoices()

	selected := m.invoiceCursor
	if !m.filterFocused && len(visible) == 0 {
		selected = -1
	}
	b.WriteString(tui.RenderInvoiceTable(visible, m.settings.Currency, selected))

	b.WriteString("\n  ")
	if m.filterFocused || m.invoiceFilter.Value() != "" {
		b.WriteString(m.invoiceFilter.View())
	}
	if m.loading.invoices {
		b.WriteString("  refreshing…")
	}
	b.WriteString("\n")
	return b.String()
}

func invoiceLabel(inv domain.Invoice) string {
	if inv.Number != "" {
		return inv.Number
	}
	return inv.ID
}
