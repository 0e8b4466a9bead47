package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate snapshot the API computes across
// all customers and invoices.
type DashboardStats struct {
	TotalCustomers int             `json:"total_customers"`
	TotalInvoices  int             `json:"total_invoices"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	DraftCount     int             `json:"draft_count"`
	SentCount      int             `json:"sent_count"`
	PaidCount      int             `json:"paid_count"`
	OverdueCount   int             `json:"overdue_count"`
}
