package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturo/facturo/internal/domain"
)

// Loads bump the collection's generation before the command runs, so
// any in-flight completion for the same collection becomes stale.

func (m *Model) loadCustomersCmd() tea.Cmd {
	m.gen.customers++
	m.loading.customers = true
	gen := m.gen.customers
	svc := m.services.Customers
	return func() tea.Msg {
		customers, err := svc.List(context.Background())
		return customersLoadedMsg{gen: gen, customers: customers, err: err}
	}
}

func (m *Model) loadInvoicesCmd() tea.Cmd {
	m.gen.invoices++
	m.loading.invoices = true
	gen := m.gen.invoices
	svc := m.services.Invoices
	return func() tea.Msg {
		invoices, err := svc.List(context.Background())
		return invoicesLoadedMsg{gen: gen, invoices: invoices, err: err}
	}
}

func (m *Model) loadStatsCmd() tea.Cmd {
	m.gen.stats++
	m.loading.stats = true
	gen := m.gen.stats
	svc := m.services.Dashboard
	return func() tea.Msg {
		stats, err := svc.Stats(context.Background())
		if err != nil {
			return statsLoadedMsg{gen: gen, err: err}
		}
		recent, err := svc.RecentInvoices(context.Background())
		return statsLoadedMsg{gen: gen, stats: stats, recent: recent, err: err}
	}
}

func (m *Model) loadSettingsCmd() tea.Cmd {
	m.gen.settings++
	gen := m.gen.settings
	svc := m.services.Settings
	return func() tea.Msg {
		settings, err := svc.Get(context.Background())
		return settingsLoadedMsg{gen: gen, settings: settings, err: err}
	}
}

func (m *Model) loadPaymentsCmd(invoiceID string) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		payments, err := svc.ListPayments(context.Background(), invoiceID)
		return paymentsLoadedMsg{invoiceID: invoiceID, payments: payments, err: err}
	}
}

func (m *Model) saveCustomerCmd(draft domain.Customer) tea.Cmd {
	svc := m.services.Customers
	return func() tea.Msg {
		saved, err := svc.Save(context.Background(), draft)
		if err != nil {
			return mutationFailedMsg{op: "save customer", err: err}
		}
		return customerSavedMsg{customer: saved}
	}
}

func (m *Model) saveInvoiceCmd(draft domain.Invoice) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		saved, err := svc.Save(context.Background(), draft)
		if err != nil {
			return mutationFailedMsg{op: "save invoice", err: err}
		}
		return invoiceSavedMsg{invoice: saved}
	}
}

func (m *Model) saveSettingsCmd(draft domain.CompanySettings) tea.Cmd {
	svc := m.services.Settings
	return func() tea.Msg {
		if err := svc.Save(context.Background(), draft); err != nil {
			return mutationFailedMsg{op: "save settings", err: err}
		}
		return settingsSavedMsg{settings: draft}
	}
}

func (m *Model) deleteCustomerCmd(id, label string) tea.Cmd {
	svc := m.services.Customers
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), id); err != nil {
			return mutationFailedMsg{op: "delete customer", err: err}
		}
		return recordDeletedMsg{kind: "customer", label: label}
	}
}

func (m *Model) deleteInvoiceCmd(id, label string) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), id); err != nil {
			return mutationFailedMsg{op: "delete invoice", err: err}
		}
		return recordDeletedMsg{kind: "invoice", label: label}
	}
}

func (m *Model) updateStatusCmd(invoiceID string, status domain.InvoiceStatus) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		if err := svc.UpdateStatus(context.Background(), invoiceID, status); err != nil {
			return mutationFailedMsg{op: "update status", err: err}
		}
		return statusUpdatedMsg{invoiceID: invoiceID, status: status}
	}
}

func (m *Model) recordPaymentCmd(draft domain.Payment) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		if _, err := svc.RecordPayment(context.Background(), draft); err != nil {
			return mutationFailedMsg{op: "record payment", err: err}
		}
		return paymentRecordedMsg{invoiceID: draft.InvoiceID}
	}
}

func (m *Model) exportInvoiceCmd(invoiceID string) tea.Cmd {
	svc := m.services.Invoices
	return func() tea.Msg {
		path, err := svc.ExportPDF(context.Background(), invoiceID)
		if err != nil {
			return mutationFailedMsg{op: "export invoice", err: err}
		}
		return invoiceExportedMsg{path: path}
	}
}
