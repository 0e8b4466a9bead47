package domain

import "context"

// CustomerAPI is the outbound port for customer records.
type CustomerAPI interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id string) (Customer, error)
	CreateCustomer(ctx context.Context, c Customer) (string, error)
	UpdateCustomer(ctx context.Context, c Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// InvoiceAPI is the outbound port for invoices, their payments and
// their rendered PDFs.
type InvoiceAPI interface {
	ListInvoices(ctx context.Context) ([]Invoice, error)
	GetInvoice(ctx context.Context, id string) (Invoice, error)
	CreateInvoice(ctx context.Context, inv Invoice) (string, error)
	UpdateInvoice(ctx context.Context, inv Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	UpdateInvoiceStatus(ctx context.Context, id string, status InvoiceStatus) error
	FetchInvoicePDF(ctx context.Context, id string) ([]byte, error)
	CreatePayment(ctx context.Context, p Payment) (string, error)
	ListInvoicePayments(ctx context.Context, invoiceID string) ([]Payment, error)
}

// SettingsAPI is the outbound port for the company profile.
type SettingsAPI interface {
	GetSettings(ctx context.Context) (CompanySettings, error)
	SaveSettings(ctx context.Context, s CompanySettings) error
}

// DashboardAPI is the outbound port for aggregate views.
type DashboardAPI interface {
	GetStats(ctx context.Context) (DashboardStats, error)
	GetRecentInvoices(ctx context.Context) ([]Invoice, error)
	Health(ctx context.Context) error
}

// BillingAPI bundles every remote capability the client uses. The
// REST adapter satisfies it with a single HTTP client.
type BillingAPI interface {
	CustomerAPI
	InvoiceAPI
	SettingsAPI
	DashboardAPI
}

// ArtifactWriter persists exported files, returning the absolute path
// they were written to.
type ArtifactWriter interface {
	Save(name string, data []byte) (string, error)
}
