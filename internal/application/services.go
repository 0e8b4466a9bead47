// Package application wires the domain ports into the use cases the
// inbound adapters (terminal UI, CLI commands, MCP server) call.
package application

import (
	"github.com/facturo/facturo/internal/domain"
)

// Services bundles every application service over a single API
// connection. All inbound adapters share one instance.
type Services struct {
	Customers *CustomerService
	Invoices  *InvoiceService
	Settings  *SettingsService
	Dashboard *DashboardService
}

func NewServices(api domain.BillingAPI, writer domain.ArtifactWriter) *Services {
	return &Services{
		Customers: NewCustomerService(api),
		Invoices:  NewInvoiceService(api, writer),
		Settings:  NewSettingsService(api),
		Dashboard: NewDashboardService(api),
	}
}
