package shell

import (
	"strings"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString("  " + tui.RenderHeader(m.view.title()) + "\n\n")

	switch m.dialog {
	case dialogCustomer:
		b.WriteString(m.viewCustomerDialog())
	case dialogInvoice:
		b.WriteString(m.viewInvoiceDialog())
	case dialogSettings:
		b.WriteString(m.viewSettingsDialog())
	case dialogPayment:
		b.WriteString(m.viewPaymentDialog())
	case dialogConfirm:
		b.WriteString(m.viewConfirm())
	case dialogStatus:
		b.WriteString(m.viewStatusPicker())
	case dialogDetail:
		b.WriteString(m.viewDetail())
	default:
		switch m.view {
		case viewCustomers:
			b.WriteString(m.viewCustomers())
		case viewInvoices:
			b.WriteString(m.viewInvoices())
		default:
			b.WriteString(m.viewDashboard())
		}
	}

	b.WriteString("\n")
	if m.banner.text != "" {
		if m.banner.isErr {
			b.WriteString("  " + tui.RenderErrorText(m.banner.text) + "\n")
		} else {
			b.WriteString("  " + tui.RenderSuccess(m.banner.text) + "\n")
		}
	}
	b.WriteString("  " + m.keyHelp() + "\n")
	return b.String()
}

func (m *Model) keyHelp() string {
	switch m.dialog {
	case dialogCustomer, dialogInvoice, dialogSettings, dialogPayment:
		return tui.RenderKeyHelp("tab/enter", "next field", "ctrl+s", "save", "esc", "cancel")
	case dialogConfirm:
		return tui.RenderKeyHelp("y", "confirm", "n/esc", "keep")
	case dialogStatus:
		return tui.RenderKeyHelp("↑/↓", "choose", "enter", "apply", "esc", "cancel")
	case dialogDetail:
		return tui.RenderKeyHelp("e", "edit", "s", "status", "p", "payment", "x", "export", "esc", "back")
	}
	switch m.view {
	case viewCustomers:
		return tui.RenderKeyHelp("n", "new", "enter", "edit", "d", "delete", "/", "filter", "1-3", "views", "q", "quit")
	case viewInvoices:
		return tui.RenderKeyHelp("n", "new", "enter", "view", "e", "edit", "s", "status", "p", "payment", "x", "export", "d", "delete", "/", "filter", "q", "quit")
	default:
		return tui.RenderKeyHelp("r", "refresh", "o", "settings", "2", "customers", "3", "invoices", "q", "quit")
	}
}
