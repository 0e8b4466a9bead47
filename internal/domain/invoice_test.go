package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/facturo/facturo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_ComputeTotals(t *testing.T) {
	inv := domain.Invoice{
		LineItems: []domain.LineItem{
			{
				Description: "Web Development Services",
				Quantity:    decimal.NewFromInt(40),
				UnitPrice:   decimal.NewFromInt(75),
				TaxRate:     decimal.NewFromFloat(8.5),
			},
			{
				Description: "Domain Registration",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(15),
				TaxRate:     decimal.Zero,
			},
		},
	}
	inv.ComputeTotals()

	assert.Equal(t, "3015.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "255.00", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "3270.00", inv.TotalAmount.StringFixed(2))
	assert.Equal(t, "3255.00", inv.LineItems[0].Total.StringFixed(2))
	assert.Equal(t, "15.00", inv.LineItems[1].Total.StringFixed(2))
}

func TestInvoice_ComputeTotals_Empty(t *testing.T) {
	inv := domain.Invoice{}
	inv.ComputeTotals()
	assert.Equal(t, "0.00", inv.TotalAmount.StringFixed(2))
}

func TestNewInvoiceDraft(t *testing.T) {
	settings := domain.DefaultCompanySettings()
	settings.DefaultTaxRate = decimal.NewFromFloat(8.5)

	draft := domain.NewInvoiceDraft(settings)

	assert.True(t, draft.IsNew())
	assert.Empty(t, draft.Number)
	assert.Equal(t, domain.StatusDraft, draft.Status)
	assert.Equal(t, domain.Today().String(), draft.IssueDate.String())
	assert.Equal(t, domain.Today().AddDays(30).String(), draft.DueDate.String())
	assert.Equal(t, "Net 30", draft.Terms)
	require.Len(t, draft.LineItems, 1)
	assert.Equal(t, "8.5", draft.LineItems[0].TaxRate.String())
	assert.Equal(t, "1", draft.LineItems[0].Quantity.String())
}

func TestInvoice_Validate(t *testing.T) {
	inv := domain.Invoice{}
	problems := inv.Validate()
	assert.Contains(t, problems, "customer_id")
	assert.Contains(t, problems, "issue_date")
	assert.Contains(t, problems, "due_date")
	assert.Contains(t, problems, "line_items")
}

func TestInvoice_Validate_LineItems(t *testing.T) {
	inv := domain.Invoice{
		CustomerID: "c-1",
		Status:     domain.StatusDraft,
		IssueDate:  domain.NewDate(2025, 5, 1),
		DueDate:    domain.NewDate(2025, 5, 31),
		LineItems: []domain.LineItem{
			{Description: "", Quantity: decimal.Zero},
		},
	}
	problems := inv.Validate()
	assert.Contains(t, problems, "line_items[0].description")
	assert.Contains(t, problems, "line_items[0].quantity")
}

func TestInvoice_Validate_DueBeforeIssue(t *testing.T) {
	inv := domain.Invoice{
		CustomerID: "c-1",
		Status:     domain.StatusSent,
		IssueDate:  domain.NewDate(2025, 5, 10),
		DueDate:    domain.NewDate(2025, 5, 1),
		LineItems: []domain.LineItem{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}
	problems := inv.Validate()
	assert.Equal(t, "must not be before the issue date", problems["due_date"])
}

func TestInvoice_Validate_OK(t *testing.T) {
	settings := domain.DefaultCompanySettings()
	inv := domain.NewInvoiceDraft(settings)
	inv.CustomerID = "c-1"
	inv.LineItems[0].Description = "Consulting"
	inv.LineItems[0].UnitPrice = decimal.NewFromInt(150)
	assert.Empty(t, inv.Validate())
}

func TestInvoice_Outstanding(t *testing.T) {
	inv := domain.Invoice{
		TotalAmount: decimal.NewFromInt(500),
		AmountPaid:  decimal.NewFromInt(120),
	}
	assert.Equal(t, "380.00", inv.Outstanding().StringFixed(2))
}

func TestInvoiceStatus_Valid(t *testing.T) {
	for _, s := range domain.AllInvoiceStatuses {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, domain.InvoiceStatus("archived").Valid())
}

func TestInvoice_JSONWire(t *testing.T) {
	inv := domain.Invoice{
		Number:     "INV-20250601120000",
		CustomerID: "c-1",
		IssueDate:  domain.NewDate(2025, 6, 1),
		DueDate:    domain.NewDate(2025, 7, 1),
		Status:     domain.StatusDraft,
		LineItems: []domain.LineItem{
			{Description: "Hosting", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(10.5)},
		},
	}
	inv.ComputeTotals()
	raw, err := json.Marshal(inv)
	require.NoError(t, err)

	// Money travels as bare JSON numbers, dates as YYYY-MM-DD strings.
	assert.Contains(t, string(raw), `"subtotal":21`)
	assert.Contains(t, string(raw), `"issue_date":"2025-06-01"`)
	assert.Contains(t, string(raw), `"invoice_number":"INV-20250601120000"`)
	assert.NotContains(t, string(raw), `"subtotal":"`)
}
