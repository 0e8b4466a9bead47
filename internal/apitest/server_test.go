package apitest_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/adapters/outbound/rest"
	"github.com/facturo/facturo/internal/apitest"
	"github.com/facturo/facturo/internal/domain"
)

func newServerAndClient(t *testing.T) (*apitest.Server, *rest.Client) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)
	return srv, rest.NewClient(srv.URL(), 5*time.Second, nil)
}

func TestCustomerRoundTrip(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	id, err := client.CreateCustomer(ctx, domain.Customer{
		Name:    "Acme Corp",
		Email:   "billing@acme.com",
		Company: "ACME Ltd",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	customers, err := client.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, id, customers[0].ID)
	assert.Equal(t, "Acme Corp", customers[0].Name)

	customers[0].Phone = "+49 30 1234"
	require.NoError(t, client.UpdateCustomer(ctx, customers[0]))

	got, err := client.GetCustomer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "+49 30 1234", got.Phone)

	require.NoError(t, client.DeleteCustomer(ctx, id))
	assert.Equal(t, 0, srv.CustomerCount())

	_, err = client.GetCustomer(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceRoundTrip(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	customerID := srv.SeedCustomer(map[string]any{
		"name":  "Acme Corp",
		"email": "billing@acme.com",
	})

	draft := domain.Invoice{
		CustomerID: customerID,
		Status:     domain.StatusDraft,
		IssueDate:  domain.NewDate(2025, 6, 1),
		DueDate:    domain.NewDate(2025, 7, 1),
		LineItems: []domain.LineItem{
			{Description: "Web Development Services", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(75), TaxRate: decimal.NewFromFloat(8.5)},
			{Description: "Domain Registration", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(15)},
		},
	}
	id, err := client.CreateInvoice(ctx, draft)
	require.NoError(t, err)

	invoices, err := client.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	inv := invoices[0]
	assert.Equal(t, id, inv.ID)
	assert.True(t, strings.HasPrefix(inv.Number, "INV-"), "number %q", inv.Number)
	assert.Equal(t, "Acme Corp", inv.CustomerName)
	assert.Equal(t, "3015.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "255.00", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "3270.00", inv.TotalAmount.StringFixed(2))
	assert.Equal(t, "2025-06-01", inv.IssueDate.String())
	assert.Equal(t, domain.PaymentPending, inv.PaymentStatus)
}

func TestInvoiceStatusAndPayments(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	customerID := srv.SeedCustomer(map[string]any{"name": "Acme", "email": "a@a.com"})
	invoiceID := srv.SeedInvoice(map[string]any{
		"customer_id": customerID,
		"status":      "sent",
		"line_items": []any{
			map[string]any{"description": "Consulting", "quantity": 10, "unit_price": 100, "tax_rate": 0},
		},
		"amount_paid":    0.0,
		"payment_status": "pending",
	})

	require.NoError(t, client.UpdateInvoiceStatus(ctx, invoiceID, domain.StatusOverdue))
	doc, ok := srv.Invoice(invoiceID)
	require.True(t, ok)
	assert.Equal(t, "overdue", doc["status"])

	_, err := client.CreatePayment(ctx, domain.Payment{
		InvoiceID:     invoiceID,
		Amount:        decimal.NewFromInt(400),
		PaymentDate:   domain.NewDate(2025, 6, 15),
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)

	inv, err := client.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPartial, inv.PaymentStatus)
	assert.Equal(t, "400.00", inv.AmountPaid.StringFixed(2))

	_, err = client.CreatePayment(ctx, domain.Payment{
		InvoiceID:     invoiceID,
		Amount:        decimal.NewFromInt(600),
		PaymentDate:   domain.NewDate(2025, 6, 20),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	inv, err = client.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)

	payments, err := client.ListInvoicePayments(ctx, invoiceID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestDashboardStats(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	customerID := srv.SeedCustomer(map[string]any{"name": "Acme", "email": "a@a.com"})
	seed := func(status string, amount int) {
		srv.SeedInvoice(map[string]any{
			"customer_id": customerID,
			"status":      status,
			"line_items": []any{
				map[string]any{"description": "Work", "quantity": 1, "unit_price": amount, "tax_rate": 0},
			},
		})
	}
	seed("paid", 1000)
	seed("sent", 200)
	seed("overdue", 50)
	seed("draft", 700)

	stats, err := client.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 4, stats.TotalInvoices)
	assert.Equal(t, "1000.00", stats.PaidAmount.StringFixed(2))
	assert.Equal(t, "200.00", stats.PendingAmount.StringFixed(2))
	assert.Equal(t, "50.00", stats.OverdueAmount.StringFixed(2))
	// Drafts stay out of revenue.
	assert.Equal(t, "1250.00", stats.TotalRevenue.StringFixed(2))
	assert.Equal(t, 1, stats.DraftCount)
	assert.Equal(t, 1, stats.SentCount)
}

func TestRecentInvoices_NewestFirst(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	customerID := srv.SeedCustomer(map[string]any{"name": "Acme", "email": "a@a.com"})
	for i := 0; i < 12; i++ {
		srv.SeedInvoice(map[string]any{
			"customer_id":    customerID,
			"invoice_number": "INV-" + string(rune('A'+i)),
			"status":         "sent",
			"line_items":     []any{},
		})
	}

	recent, err := client.GetRecentInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "INV-L", recent[0].Number)
	assert.Equal(t, "INV-C", recent[9].Number)
	assert.Equal(t, "Acme", recent[0].CustomerName)
}

func TestRequestLogAndFailNext(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	_, err := client.ListCustomers(ctx)
	require.NoError(t, err)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/api/customers", last.Path)

	srv.FailNext(http.StatusInternalServerError, "database unavailable")
	_, err = client.ListCustomers(ctx)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "database unavailable", apiErr.Detail)

	// The failure is one-shot.
	_, err = client.ListCustomers(ctx)
	assert.NoError(t, err)
}

func TestInvoicePDF(t *testing.T) {
	srv, client := newServerAndClient(t)
	ctx := context.Background()

	customerID := srv.SeedCustomer(map[string]any{"name": "Acme", "email": "a@a.com"})
	invoiceID := srv.SeedInvoice(map[string]any{
		"customer_id":    customerID,
		"invoice_number": "INV-20250601120000",
		"status":         "sent",
		"line_items":     []any{},
	})

	data, err := client.FetchInvoicePDF(ctx, invoiceID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Contains(t, string(data), "INV-20250601120000")

	_, err = client.FetchInvoicePDF(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
