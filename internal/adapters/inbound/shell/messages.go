package shell

import (
	"github.com/facturo/facturo/internal/domain"
)

// Load results carry the generation of the request that issued them so
// the reducer can drop completions that arrive after a newer load was
// started. They also carry the error instead of swallowing it.

type customersLoadedMsg struct {
	gen       int
	customers []domain.Customer
	err       error
}

type invoicesLoadedMsg struct {
	gen      int
	invoices []domain.Invoice
	err      error
}

type statsLoadedMsg struct {
	gen    int
	stats  domain.DashboardStats
	recent []domain.Invoice
	err    error
}

type settingsLoadedMsg struct {
	gen      int
	settings domain.CompanySettings
	err      error
}

type paymentsLoadedMsg struct {
	invoiceID string
	payments  []domain.Payment
	err       error
}

// Mutation results. Successes close the owning dialog and trigger the
// reloads the mutation calls for; failures keep the dialog open.

type customerSavedMsg struct {
	customer domain.Customer
}

type invoiceSavedMsg struct {
	invoice domain.Invoice
}

type settingsSavedMsg struct {
	settings domain.CompanySettings
}

type recordDeletedMsg struct {
	kind  string // "customer" or "invoice"
	label string
}

type statusUpdatedMsg struct {
	invoiceID string
	status    domain.InvoiceStatus
}

type paymentRecordedMsg struct {
	invoiceID string
}

type invoiceExportedMsg struct {
	path string
}

type mutationFailedMsg struct {
	op  string
	err error
}
