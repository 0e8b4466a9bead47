package tui_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

func sampleStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalCustomers: 4,
		TotalInvoices:  9,
		TotalRevenue:   decimal.NewFromFloat(1250.50),
		PendingAmount:  decimal.NewFromInt(200),
		OverdueAmount:  decimal.NewFromInt(50),
		PaidAmount:     decimal.NewFromInt(1000),
		DraftCount:     2,
		SentCount:      3,
		PaidCount:      3,
		OverdueCount:   1,
	}
}

func sampleInvoice() domain.Invoice {
	inv := domain.Invoice{
		ID:           "inv-1",
		Number:       "INV-20250601120000",
		CustomerID:   "cus-1",
		CustomerName: "Acme Corp",
		Status:       domain.StatusSent,
		IssueDate:    domain.NewDate(2025, 6, 1),
		DueDate:      domain.NewDate(2025, 7, 1),
		LineItems: []domain.LineItem{
			{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.NewFromFloat(8.5)},
		},
		PaymentStatus: domain.PaymentPartial,
		AmountPaid:    decimal.NewFromInt(400),
		Notes:         "Thanks for your business",
	}
	inv.ComputeTotals()
	return inv
}

func TestRenderStats_ShowsAmounts(t *testing.T) {
	output := tui.RenderStats(sampleStats(), "USD")
	assert.Contains(t, output, "Total Revenue")
	assert.Contains(t, output, "$1250.50")
	assert.Contains(t, output, "$200.00")
	assert.Contains(t, output, "$50.00")
	assert.Contains(t, output, "$1000.00")
}

func TestRenderStats_ShowsCounts(t *testing.T) {
	output := tui.RenderStats(sampleStats(), "USD")
	assert.Contains(t, output, "4")
	assert.Contains(t, output, "customers")
	assert.Contains(t, output, "9")
	assert.Contains(t, output, "invoices")
	assert.Contains(t, output, "2 draft")
	assert.Contains(t, output, "3 sent")
	assert.Contains(t, output, "3 paid")
	assert.Contains(t, output, "1 overdue")
}

func TestRenderRecentInvoices_ListsRows(t *testing.T) {
	output := tui.RenderRecentInvoices([]domain.Invoice{sampleInvoice()}, "USD")
	assert.Contains(t, output, "Recent Invoices")
	assert.Contains(t, output, "INV-20250601120000")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "$1085.00")
	assert.Contains(t, output, "sent")
}

func TestRenderRecentInvoices_Empty(t *testing.T) {
	output := tui.RenderRecentInvoices(nil, "USD")
	assert.Contains(t, output, "No invoices yet")
}

func TestRenderCustomerTable_MarksSelectedRow(t *testing.T) {
	customers := []domain.Customer{
		{Name: "Acme Corp", Email: "billing@acme.test", Company: "Acme", Phone: "555-0100"},
		{Name: "Globex", Email: "ap@globex.test"},
	}
	output := tui.RenderCustomerTable(customers, 1)
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "billing@acme.test")
	assert.Contains(t, output, "▸")
	assert.Contains(t, output, "Globex")
}

func TestRenderCustomerTable_Empty(t *testing.T) {
	output := tui.RenderCustomerTable(nil, -1)
	assert.Contains(t, output, "No customers match")
}

func TestRenderCustomerDetail_SkipsBlankFields(t *testing.T) {
	output := tui.RenderCustomerDetail(domain.Customer{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
		City:  "Berlin",
	})
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "billing@acme.test")
	assert.Contains(t, output, "Berlin")
	assert.NotContains(t, output, "Tax number")
}

func TestRenderInvoiceTable_MarksSelectedRow(t *testing.T) {
	invoices := []domain.Invoice{sampleInvoice(), sampleInvoice()}
	invoices[1].Number = "INV-2"
	invoices[1].Status = domain.StatusOverdue

	output := tui.RenderInvoiceTable(invoices, "USD", 0)
	assert.Contains(t, output, "▸")
	assert.Contains(t, output, "INV-20250601120000")
	assert.Contains(t, output, "INV-2")
	assert.Contains(t, output, "overdue")
	assert.Contains(t, output, "2025-06-01")
	assert.Contains(t, output, "2025-07-01")
}

func TestRenderInvoiceTable_Empty(t *testing.T) {
	output := tui.RenderInvoiceTable(nil, "USD", -1)
	assert.Contains(t, output, "No invoices match")
}

func TestRenderInvoiceDetail_ShowsLineItemsAndTotals(t *testing.T) {
	output := tui.RenderInvoiceDetail(sampleInvoice(), "USD")
	assert.Contains(t, output, "Consulting")
	assert.Contains(t, output, "$100.00")
	assert.Contains(t, output, "8.5")
	assert.Contains(t, output, "$1000.00") // subtotal
	assert.Contains(t, output, "$85.00")   // tax
	assert.Contains(t, output, "$1085.00") // total
	assert.Contains(t, output, "$400.00")  // paid
	assert.Contains(t, output, "$685.00")  // outstanding
	assert.Contains(t, output, "Thanks for your business")
}

func TestRenderPayments_ListsRows(t *testing.T) {
	payments := []domain.Payment{
		{
			Amount:          decimal.NewFromInt(400),
			PaymentDate:     domain.NewDate(2025, 6, 15),
			PaymentMethod:   "bank_transfer",
			ReferenceNumber: "TX-99",
		},
	}
	output := tui.RenderPayments(payments, "USD")
	assert.Contains(t, output, "2025-06-15")
	assert.Contains(t, output, "bank_transfer")
	assert.Contains(t, output, "TX-99")
	assert.Contains(t, output, "$400.00")
}

func TestRenderPayments_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderPayments(nil, "USD"), "No payments recorded")
}

func TestRenderSettings_ShowsProfileAndDefaults(t *testing.T) {
	s := domain.DefaultCompanySettings()
	s.CompanyName = "Facturo GmbH"
	s.Address = "Hauptstr. 1"
	s.City = "Berlin"
	s.Logo = "data:image/png;base64,aGVsbG8="

	output := tui.RenderSettings(s)
	assert.Contains(t, output, "Facturo GmbH")
	assert.Contains(t, output, "Hauptstr. 1")
	assert.Contains(t, output, "Net 30")
	assert.Contains(t, output, "USD")
	assert.Contains(t, output, "embedded image/png")
	assert.NotContains(t, output, "aGVsbG8=")
}

func TestRenderStatusBadges(t *testing.T) {
	assert.Contains(t, tui.StatusBadge(domain.StatusPaid), "paid")
	assert.Contains(t, tui.StatusBadge(domain.InvoiceStatus("odd")), "odd")
	assert.Contains(t, tui.PaymentBadge(domain.PaymentPartial), "partial")
}

func TestRenderBanners(t *testing.T) {
	assert.Contains(t, tui.RenderError(errors.New("boom")), "boom")
	assert.Empty(t, tui.RenderError(nil))
	assert.Contains(t, tui.RenderSuccess("Invoice created successfully"), "Invoice created successfully")
	assert.Empty(t, tui.RenderSuccess(""))
}

func TestRenderHeaderAndKeyHelp(t *testing.T) {
	assert.Contains(t, tui.RenderHeader("Invoices"), "Facturo")
	assert.Contains(t, tui.RenderHeader("Invoices"), "Invoices")

	help := tui.RenderKeyHelp("n", "new", "e", "edit")
	assert.Contains(t, help, "n")
	assert.Contains(t, help, "new")
	assert.Contains(t, help, "edit")
}
